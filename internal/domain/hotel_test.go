package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeAmenities(t *testing.T) {
	assert.Equal(t, []string{"Pool", "Spa", "Restaurant"}, DecodeAmenities(`["Pool", "Spa", "Restaurant"]`))
	assert.Equal(t, []string{}, DecodeAmenities(""))
	assert.Equal(t, []string{}, DecodeAmenities("Pool, Spa, Restaurant"))
	assert.Equal(t, []string{}, DecodeAmenities(`{"not":"a list"}`))
}
