package persist

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// TestClassify tests the SQLSTATE to error-taxonomy mapping
func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		code string
		want any
	}{
		{"insufficient privilege", "42501", &PermissionError{}},
		{"invalid authorization", "28000", &PermissionError{}},
		{"invalid password", "28P01", &PermissionError{}},
		{"database missing", "3D000", &NotProvisionedError{}},
		{"table missing", "42P01", &NotProvisionedError{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify("save document", &pgconn.PgError{Code: tt.code, Message: tt.name})
			switch tt.want.(type) {
			case *PermissionError:
				var pe *PermissionError
				assert.True(t, errors.As(err, &pe))
			case *NotProvisionedError:
				var npe *NotProvisionedError
				assert.True(t, errors.As(err, &npe))
			}
			// The operation name and guidance are user-facing.
			assert.Contains(t, err.Error(), "save document")
		})
	}
}

// TestClassify_GenericError tests that unrecognized failures pass through
// wrapped
func TestClassify_GenericError(t *testing.T) {
	cause := errors.New("connection reset")
	err := classify("fetch document", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "fetch document")

	var pe *PermissionError
	assert.False(t, errors.As(err, &pe))
}

// TestClassify_WrappedPgError tests classification through wrapping layers
func TestClassify_WrappedPgError(t *testing.T) {
	cause := fmt.Errorf("exec failed: %w", &pgconn.PgError{Code: "42501"})
	err := classify("upload asset", cause)

	var pe *PermissionError
	assert.True(t, errors.As(err, &pe))
}

// TestClassify_Nil tests the nil pass-through
func TestClassify_Nil(t *testing.T) {
	assert.NoError(t, classify("anything", nil))
}
