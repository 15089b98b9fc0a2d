package guarantor_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/lendbook/internal/guarantor"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from, to guarantor.Status
		ok       bool
	}{
		{guarantor.StatusPending, guarantor.StatusSubmitted, true},
		{guarantor.StatusSubmitted, guarantor.StatusVerified, true},
		{guarantor.StatusSubmitted, guarantor.StatusRejected, true},
		{guarantor.StatusPending, guarantor.StatusVerified, false},
		{guarantor.StatusSubmitted, guarantor.StatusSubmitted, false},
		{guarantor.StatusVerified, guarantor.StatusRejected, false},
		{guarantor.StatusRejected, guarantor.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := guarantor.Transition(tt.from, tt.to)
			if tt.ok {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, guarantor.ErrInvalidTransition)
		})
	}
}

func TestService_Invite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := guarantor.NewMockRepository(ctrl)
	repo.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).Return(nil)

	loanID := uuid.New()

	sub, err := guarantor.NewService(repo, guarantor.Config{}).Invite(context.Background(), guarantor.InviteParams{
		LoanID: loanID,
		Name:   "Ada Obi",
		Email:  "ada@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, guarantor.StatusPending, sub.Status)
	assert.Equal(t, loanID, sub.LoanID)
	assert.NotEmpty(t, sub.AccessToken)

	_, err = uuid.Parse(sub.AccessToken)
	assert.NoError(t, err)
}

func TestService_Submit_TokenIsSingleUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := guarantor.NewMockRepository(ctrl)
	svc := guarantor.NewService(repo, guarantor.Config{})

	sub := &guarantor.Submission{ID: uuid.New(), Status: guarantor.StatusPending, AccessToken: "tok", Name: "Invited"}

	repo.EXPECT().GetSubmissionByToken(gomock.Any(), "tok").Return(sub, nil).Times(2)
	repo.EXPECT().UpdateSubmission(gomock.Any(), sub, guarantor.StatusPending).Return(nil)

	got, err := svc.Submit(context.Background(), "tok", guarantor.SubmitParams{Phone: "+2348000000"})
	require.NoError(t, err)
	assert.Equal(t, guarantor.StatusSubmitted, got.Status)
	assert.Equal(t, "Invited", got.Name)
	assert.Equal(t, "+2348000000", got.Phone)
	assert.NotNil(t, got.SubmittedAt)

	_, err = svc.Submit(context.Background(), "tok", guarantor.SubmitParams{})
	assert.ErrorIs(t, err, guarantor.ErrInvalidTransition)
}

func TestService_Submit_UnknownToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := guarantor.NewMockRepository(ctrl)
	repo.EXPECT().GetSubmissionByToken(gomock.Any(), "nope").Return(nil, guarantor.ErrNotFound)

	_, err := guarantor.NewService(repo, guarantor.Config{}).Submit(context.Background(), "nope", guarantor.SubmitParams{})
	assert.ErrorIs(t, err, guarantor.ErrNotFound)
}

func TestService_Review(t *testing.T) {
	tests := []struct {
		name    string
		status  guarantor.Status
		verify  bool
		want    guarantor.Status
		wantErr bool
	}{
		{name: "VerifySubmitted", status: guarantor.StatusSubmitted, verify: true, want: guarantor.StatusVerified},
		{name: "RejectSubmitted", status: guarantor.StatusSubmitted, want: guarantor.StatusRejected},
		{name: "VerifyPending", status: guarantor.StatusPending, verify: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := guarantor.NewMockRepository(ctrl)
			svc := guarantor.NewService(repo, guarantor.Config{})

			sub := &guarantor.Submission{ID: uuid.New(), Status: tt.status}
			repo.EXPECT().GetSubmission(gomock.Any(), sub.ID).Return(sub, nil)

			if !tt.wantErr {
				repo.EXPECT().UpdateSubmission(gomock.Any(), sub, tt.status).Return(nil)
			}

			var (
				got *guarantor.Submission
				err error
			)

			if tt.verify {
				got, err = svc.Verify(context.Background(), sub.ID, "risk-1")
			} else {
				got, err = svc.Reject(context.Background(), sub.ID, "risk-1")
			}

			if tt.wantErr {
				assert.ErrorIs(t, err, guarantor.ErrInvalidTransition)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status)
			assert.Equal(t, "risk-1", got.ReviewedBy)
			assert.NotNil(t, got.ReviewedAt)
		})
	}
}

func TestService_RequirementStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := guarantor.NewMockRepository(ctrl)
	loanID := uuid.New()

	repo.EXPECT().ListSubmissions(gomock.Any(), loanID).Return([]*guarantor.Submission{
		{Status: guarantor.StatusVerified},
		{Status: guarantor.StatusSubmitted},
		{Status: guarantor.StatusPending},
		{Status: guarantor.StatusRejected},
	}, nil)

	svc := guarantor.NewService(repo, guarantor.Config{Enabled: true, Tiers: tiers()})

	req, err := svc.RequirementStatus(context.Background(), loanID, d("100000"))
	require.NoError(t, err)
	assert.Equal(t, guarantor.Requirement{Required: 2, Verified: 1, Submitted: 1, Pending: 1}, req)
	assert.False(t, req.Satisfied())
}
