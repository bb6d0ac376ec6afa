package vo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketListCoversEveryCount(t *testing.T) {
	buckets := GetBucketList()
	for _, elements := range []int{0, 1, 2, 5, 10, 20, 21, 1000} {
		matches := 0
		for _, b := range buckets {
			if b.Contains(elements) {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "elements %d", elements)
	}
}
