package branch

import (
	"strings"
	"testing"

	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBranchRequest_Validate(t *testing.T) {
	req := CreateBranchRequest{Name: "  Stamford  "}
	require.NoError(t, req.Validate())
	assert.Equal(t, "Stamford", req.Name)

	empty := CreateBranchRequest{Name: "   "}
	err := empty.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "name", errs[0].Field)

	long := CreateBranchRequest{Name: strings.Repeat("x", 101)}
	assert.Error(t, long.Validate())
}

func TestUpdateBranchRequest_Validate(t *testing.T) {
	blank := ""
	name := " Scranton "

	tests := []struct {
		name    string
		req     UpdateBranchRequest
		wantErr bool
	}{
		{"missing id", UpdateBranchRequest{Name: &name}, true},
		{"blank name", UpdateBranchRequest{ID: 2, Name: &blank}, true},
		{"no changes", UpdateBranchRequest{ID: 2}, false},
		{"rename", UpdateBranchRequest{ID: 2, Name: &name}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}

	req := UpdateBranchRequest{ID: 2, Name: &name}
	require.NoError(t, req.Validate())
	assert.Equal(t, "Scranton", *req.Name)
}
