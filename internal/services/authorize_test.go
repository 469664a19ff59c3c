package services

import (
	"testing"

	"github.com/handmadefactory/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	cases := []struct {
		name    string
		roles   []string
		allowed []string
		wantErr error
	}{
		{"single match", []string{domain.RoleViewer}, []string{domain.RoleAdmin, domain.RoleEditor, domain.RoleViewer}, nil},
		{"or semantics", []string{domain.RoleEditor}, []string{domain.RoleAdmin, domain.RoleEditor}, nil},
		{"no intersection", []string{domain.RoleViewer}, []string{domain.RoleAdmin}, ErrForbidden},
		{"no roles at all", nil, []string{domain.RoleAdmin}, ErrForbidden},
		{"duplicates change nothing", []string{domain.RoleViewer, domain.RoleViewer}, []string{domain.RoleAdmin}, ErrForbidden},
		{"order independent", []string{domain.RoleViewer, domain.RoleAdmin}, []string{domain.RoleAdmin}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.roles, tc.allowed...)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}
