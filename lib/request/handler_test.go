package requesthandler

import (
	"testing"

	apperrors "helpdesk-backend/lib/utils/app-errors"
	"helpdesk-backend/lib/utils/testdb"
	"helpdesk-backend/models"
	hiringapimodels "helpdesk-backend/models/api/hiring"
	dbmodels "helpdesk-backend/models/db"

	"github.com/stretchr/testify/require"
)

var (
	agent    = models.Actor{ID: "agent-1", Name: "Иванова Анна", Role: models.AgentRole}
	ceo      = models.Actor{ID: "ceo-1", Name: "Петров Сергей", Role: models.CeoRole}
	manager  = models.Actor{ID: "manager-1", Name: "Смирнов Олег", Role: models.EmployeeRole}
	outsider = models.Actor{ID: "user-2", Name: "Кузнецова Мария", Role: models.EmployeeRole}
)

func TestRequestHandler(t *testing.T) {
	t.Run(`create check`, func(t *testing.T) {
		h := NewInstance(testdb.New(t))
		view, err := h.Create(manager, hiringapimodels.RequestCreateData{Title: "Аналитик данных"})
		require.Nil(t, err)
		require.Equal(t, models.RSSubmitted, view.Status)
		require.Equal(t, models.ServiceDeskHR, view.ServiceDesk)
		require.Equal(t, manager.ID, view.RequesterID)
		require.Equal(t, manager.Name, view.RequesterName)

		_, err = h.Create(manager, hiringapimodels.RequestCreateData{})
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		_, err = h.Create(manager, hiringapimodels.RequestCreateData{Title: "Тест", ServiceDesk: "LEGAL"})
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run(`visibility check`, func(t *testing.T) {
		DB := testdb.New(t)
		h := NewInstance(DB)
		view, err := h.Create(manager, hiringapimodels.RequestCreateData{Title: "Аналитик данных"})
		require.Nil(t, err)

		require.Nil(t, h.CheckAccess(manager, view.ID))
		require.Nil(t, h.CheckAccess(agent, view.ID))
		require.Equal(t, apperrors.KindForbidden, apperrors.KindOf(h.CheckAccess(outsider, view.ID)))
		// CEO видит заявку только после передачи в процесс найма
		require.Equal(t, apperrors.KindForbidden, apperrors.KindOf(h.CheckAccess(ceo, view.ID)))

		require.Nil(t, DB.Model(&dbmodels.Request{}).Where("id = ?", view.ID).Update("status", models.RSPendingCeoApproval).Error)
		got, err := h.GetByID(ceo, view.ID)
		require.Nil(t, err)
		require.Equal(t, models.RSPendingCeoApproval, got.Status)

		_, err = h.GetByID(agent, "missing")
		require.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})

	t.Run(`start review check`, func(t *testing.T) {
		h := NewInstance(testdb.New(t))
		view, err := h.Create(manager, hiringapimodels.RequestCreateData{Title: "Аналитик данных"})
		require.Nil(t, err)

		res, err := h.StartReview(agent, view.ID)
		require.Nil(t, err)
		require.Equal(t, models.RSInReview, res.Request.Status)
		require.Equal(t, agent.ID, *res.Request.AssignedToID)

		_, err = h.StartReview(agent, view.ID)
		require.Equal(t, apperrors.KindInvalidState, apperrors.KindOf(err))
	})

	t.Run(`comments and internal notes check`, func(t *testing.T) {
		h := NewInstance(testdb.New(t))
		view, err := h.Create(manager, hiringapimodels.RequestCreateData{Title: "Аналитик данных"})
		require.Nil(t, err)

		require.Nil(t, h.AddComment(agent, view.ID, hiringapimodels.CommentData{Message: "Уточнить бюджет", IsInternal: true}))
		require.Nil(t, h.AddComment(manager, view.ID, hiringapimodels.CommentData{Message: "Бюджет в заявке", IsInternal: true}))
		require.Equal(t, apperrors.KindValidation, apperrors.KindOf(h.AddComment(manager, view.ID, hiringapimodels.CommentData{})))
		require.Equal(t, apperrors.KindForbidden, apperrors.KindOf(h.AddComment(outsider, view.ID, hiringapimodels.CommentData{Message: "?"})))

		list, total, err := h.ListActivities(agent, view.ID, hiringapimodels.ActivityFilter{})
		require.Nil(t, err)
		require.EqualValues(t, 3, total)
		require.Len(t, list, 3)
		require.False(t, list[0].IsSystemGenerated)
		require.Equal(t, models.ActivitySystem, list[0].Type)

		list, total, err = h.ListActivities(manager, view.ID, hiringapimodels.ActivityFilter{CommentsOnly: true})
		require.Nil(t, err)
		require.EqualValues(t, 1, total)
		require.Equal(t, "Бюджет в заявке", list[0].Message)
		require.False(t, list[0].IsInternal)
	})
}
