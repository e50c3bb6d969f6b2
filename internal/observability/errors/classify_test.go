package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/target/storefront-ui/internal/errors"
)

func TestClassify(t *testing.T) {
	assert.Empty(t, Classify(nil))
	assert.Equal(t, "not_found", Classify(fmt.Errorf("get: %w", apperrors.NotFound("gone"))))
	assert.Equal(t, "canceled", Classify(apperrors.FromTransport(context.Canceled)))
	assert.Equal(t, "errors_errorstring", Classify(fmt.Errorf("wrap: %w", fmt.Errorf("inner"))))
}
