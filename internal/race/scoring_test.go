package race

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	credits := []int{5, 0, 2}

	tests := []struct {
		name  string
		score int
		want  int
	}{
		{"beats everyone", 10, 1},
		{"between", 3, 2},
		{"tie ranks behind", 2, 3},
		{"last", 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rank(credits, 3, tt.score))
		})
	}
	assert.Equal(t, []int{5, 0, 2}, credits, "history is not reordered")
}

func TestRank_NoTraffic(t *testing.T) {
	assert.Equal(t, 1, Rank(nil, 0, 0))
}
