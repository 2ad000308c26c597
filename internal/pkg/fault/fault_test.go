package fault

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil error", err: nil, want: KindNone},
		{name: "wrapped network error", err: fmt.Errorf("%w: dial tcp", ErrNetwork), want: KindNetwork},
		{name: "wrapped response error", err: fmt.Errorf("%w: 500", ErrResponse), want: KindResponse},
		{name: "wrapped parse error", err: fmt.Errorf("%w: invalid character", ErrParse), want: KindParse},
		{name: "wrapped schema error", err: fmt.Errorf("%w: txs", ErrSchema), want: KindSchema},
		{name: "joined schema error", err: errors.Join(ErrSchema, errors.New("inputs[0]")), want: KindSchema},
		{name: "foreign error", err: errors.New("boom"), want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "none", KindNone.String())
	assert.Equal(t, "network", KindNetwork.String())
	assert.Equal(t, "response", KindResponse.String())
	assert.Equal(t, "parse", KindParse.String())
	assert.Equal(t, "schema", KindSchema.String())
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
