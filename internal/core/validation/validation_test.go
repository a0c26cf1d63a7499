package validation

import (
	"errors"
	"testing"

	"cargo-portal/internal/core/notice"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginForm struct {
	Phone    string `json:"phone" validate:"required,phone"`
	Password string `json:"password" validate:"required"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(loginForm{Phone: "+97699112233", Password: "x"}))

	err := Struct(loginForm{Phone: "abc"})
	var vErr *notice.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "must be a valid phone number", vErr.Fields["phone"])
	assert.Equal(t, "is required", vErr.Fields["password"])
}

func TestVar(t *testing.T) {
	assert.NoError(t, Var("productUrl", "https://taobao.com/item/1", "required,url"))

	err := Var("productUrl", "nope", "required,url")
	var vErr *notice.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, map[string]string{"productUrl": "must be a valid URL"}, vErr.Fields)

	err = Var("serviceType", "SLOW", "oneof=STANDARD FAST")
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "must be one of STANDARD FAST", vErr.Fields["serviceType"])
}

func TestMerge(t *testing.T) {
	assert.NoError(t, Merge(nil, nil))

	merged := Merge(
		Var("a", "", "required"),
		nil,
		Var("b", "", "required"),
	)
	var vErr *notice.ValidationError
	require.True(t, errors.As(merged, &vErr))
	assert.Len(t, vErr.Fields, 2)

	other := errors.New("boom")
	assert.Equal(t, other, Merge(Var("a", "", "required"), other))
}

func TestVar_Positive(t *testing.T) {
	assert.NoError(t, Var("price", "12.50", "required,positive"))

	var vErr *notice.ValidationError
	for _, raw := range []string{"0", "-3", "abc"} {
		err := Var("price", raw, "required,positive")
		require.True(t, errors.As(err, &vErr), raw)
		assert.Equal(t, "must be a number greater than 0", vErr.Fields["price"])
	}
}
