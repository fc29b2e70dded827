package rbac

import (
	"testing"

	"helpdesk-backend/models"

	"github.com/stretchr/testify/require"
)

func TestRbac(t *testing.T) {
	t.Run(`pathToRegex check`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/api/v1/requests/{id}/ceo-decision [post]")
		require.Nil(t, err)
		require.Equal(t, POST, method)
		r1 := pathToRegex(path)

		validUri := "/api/v1/requests/123-321/ceo-decision"
		isMatch := r1.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri := "/api/v1/requests/ceo-decision"
		isMatch = r1.MatchString(invalidUri)
		require.Equal(t, false, isMatch)

		path, method, err = parseSwaggerPattern("/api/v1/requests/{id}/resumes/{resumeId} [delete]")
		require.Nil(t, err)
		require.Equal(t, DELETE, method)
		r2 := pathToRegex(path)

		validUri = "/api/v1/requests/123-321/resumes/qwe-ewr123-wr-12"
		isMatch = r2.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri = "/api/v1/requests/we-ewr123-wr-12/resumes"
		isMatch = r2.MatchString(invalidUri)
		require.Equal(t, false, isMatch)
	})

	t.Run(`parseSwaggerPattern without method check`, func(t *testing.T) {
		_, _, err := parseSwaggerPattern("/api/v1/requests")
		require.NotNil(t, err)
		require.Equal(t, "/api/v1/requests", normalizePath("api//v1/requests/"))
	})

	t.Run(`hiring rules check`, func(t *testing.T) {
		NewHandler()
		handler, found := Instance.GetRuleFunc("post", "/api/v1/requests/req-1/ceo-decision")
		require.True(t, found)
		require.True(t, handler("ceo-1", models.CeoRole, "/api/v1/requests/req-1/ceo-decision"))
		require.True(t, handler("admin-1", models.AdminRole, "/api/v1/requests/req-1/ceo-decision"))
		require.False(t, handler("agent-1", models.AgentRole, "/api/v1/requests/req-1/ceo-decision"))

		handler, found = Instance.GetRuleFunc("POST", "/api/v1/requests/req-1/route-to-manager/")
		require.True(t, found)
		require.True(t, handler("agent-1", models.AgentRole, ""))
		require.False(t, handler("user-1", models.EmployeeRole, ""))

		// решение менеджера доступно всем ролям, автор заявки проверяется при переходе
		handler, found = Instance.GetRuleFunc("POST", "/api/v1/requests/req-1/manager-decision")
		require.True(t, found)
		require.True(t, handler("user-1", models.EmployeeRole, ""))

		handler, found = Instance.GetRuleFunc("GET", "/api/v1/requests/req-1/screening")
		require.True(t, found)
		require.False(t, handler("user-1", models.EmployeeRole, ""))

		_, found = Instance.GetRuleFunc("GET", "/api/v1/unknown")
		require.False(t, found)

		permissions := Instance.GetPermissions(models.CeoRole)
		require.Contains(t, permissions[models.HiringModule], models.DecidePermission)
		require.NotContains(t, permissions[models.LoaModule], models.FilesPermission)
	})
}
