package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestStatus(t *testing.T) {
	t.Run(`IsInHiringWorkflow check`, func(t *testing.T) {
		require.False(t, RSSubmitted.IsInHiringWorkflow())
		require.False(t, RSInReview.IsInHiringWorkflow())
		require.False(t, RSResolved.IsInHiringWorkflow())
		for _, status := range HiringWorkflowStatuses() {
			require.True(t, status.IsInHiringWorkflow(), status)
		}
	})

	t.Run(`HiringWorkflowStatuses copy check`, func(t *testing.T) {
		list := HiringWorkflowStatuses()
		list[0] = RSResolved
		require.Equal(t, RSPendingCeoApproval, HiringWorkflowStatuses()[0])
	})

	t.Run(`IsTerminal check`, func(t *testing.T) {
		require.True(t, RSCeoRejected.IsTerminal())
		require.True(t, RSCandidateRejectedInterview.IsTerminal())
		require.True(t, RSResolved.IsTerminal())
		require.False(t, RSLoaIssued.IsTerminal())
	})

	t.Run(`Validate check`, func(t *testing.T) {
		require.Nil(t, RSHrScreening.Validate())
		require.NotNil(t, RequestStatus("INTERVIEW_DONE").Validate())
		require.Equal(t, "Проверка HR", RSHrScreening.ToHuman())
		require.Equal(t, "UNKNOWN", RequestStatus("UNKNOWN").ToHuman())
	})
}

func TestDecisions(t *testing.T) {
	t.Run(`Decision check`, func(t *testing.T) {
		require.Nil(t, DecisionApproved.Validate())
		require.Nil(t, DecisionRejected.Validate())
		require.NotNil(t, Decision("").Validate())
		require.NotNil(t, Decision("MAYBE").Validate())
		require.Equal(t, AStatusApproved, DecisionApproved.ToApprovalStatus())
		require.Equal(t, AStatusRejected, DecisionRejected.ToApprovalStatus())
	})

	t.Run(`InterviewDecision check`, func(t *testing.T) {
		require.Nil(t, InterviewDecisionProceed.Validate())
		require.Nil(t, InterviewDecisionReject.Validate())
		require.NotNil(t, InterviewDecision("APPROVED").Validate())
	})
}

func TestDeriveScreeningStatus(t *testing.T) {
	cases := []struct {
		background CheckStatus
		references CheckStatus
		expected   ScreeningStatus
	}{
		{CheckStatusPending, CheckStatusPending, ScreeningInProgress},
		{CheckStatusCompleted, CheckStatusInProgress, ScreeningInProgress},
		{CheckStatusCompleted, CheckStatusCompleted, ScreeningCompleted},
		{CheckStatusFailed, CheckStatusCompleted, ScreeningIssuesFound},
		{CheckStatusCompleted, CheckStatusFailed, ScreeningIssuesFound},
		{CheckStatusFailed, CheckStatusPending, ScreeningIssuesFound},
	}
	for _, tc := range cases {
		require.Equal(t, tc.expected, DeriveScreeningStatus(tc.background, tc.references), "%v/%v", tc.background, tc.references)
	}
}
