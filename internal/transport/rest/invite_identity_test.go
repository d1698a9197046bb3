package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkhouse/publishing-backend/internal/adapter/provider/clerk"
	"github.com/inkhouse/publishing-backend/internal/domain"
	"github.com/inkhouse/publishing-backend/internal/service/team"
)

func TestRouter_InviteIdentityRejectionIsServerError(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusUnprocessableEntity} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				_, _ = w.Write([]byte(`{"errors":[{"code":"rejected","message":"rejected"}]}`))
			}))
			t.Cleanup(srv.Close)
			identity := clerk.NewClient("sk_test_123", srv.URL, discardLogger())

			d := newTestDeps()
			d.team.invite = func(in team.InviteInput) (*domain.InvitedMember, error) {
				_, err := identity.CreateInvitation(context.Background(), domain.InvitationParams{
					OrganizationID: in.WorkspaceID,
					Email:          in.Email,
					Role:           domain.OrgRole(in.Role),
				})
				require.Error(t, err)
				return nil, fmt.Errorf("create invitation: %w", err)
			}

			rec := do(t, d.router(), http.MethodPost, "/api/team-members", `{"email":"a@b.co","workspace_id":"ws1","role":"editor"}`)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error":"Server Error"`)
		})
	}
}
