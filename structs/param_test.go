package structs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVitalsInputAcceptsNumbers(t *testing.T) {
	var v VitalsInput
	require.NoError(t, json.Unmarshal([]byte(`{"age":25,"chol":"233","trestbps":120.5}`), &v))

	assert.Equal(t, VitalsInput{Age: "25", Chol: "233", Trestbps: "120.5"}, v)
}

func TestVitalsInputMissingAndNull(t *testing.T) {
	var v VitalsInput
	require.NoError(t, json.Unmarshal([]byte(`{"age":null}`), &v))

	assert.Equal(t, VitalsInput{}, v)
}

func TestVitalsInputRejectsOtherTypes(t *testing.T) {
	for _, body := range []string{`{"age":true}`, `{"chol":{}}`, `{"trestbps":[1]}`, `[]`} {
		var v VitalsInput
		assert.Error(t, json.Unmarshal([]byte(body), &v), body)
	}
}

func TestVitalsInputMarshalsStrings(t *testing.T) {
	out, err := json.Marshal(VitalsInput{Age: "25", Chol: "200", Trestbps: "120"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"age":"25","chol":"200","trestbps":"120"}`, string(out))
}
