package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fairplay10x/internal/model"
)

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID("event_id", "0b7c7c1e-58f4-4cf3-9a43-3d7f0f7c2a10"))
	assert.Error(t, ValidateID("event_id", ""))
	assert.Error(t, ValidateID("event_id", "42"))
}

func TestValidatePlayerRequest(t *testing.T) {
	dob := "1990-04-12"
	p, err := ValidatePlayerRequest(playerRequest{FirstName: "Jan", LastName: "Nowak", Position: model.PositionDefender, DateOfBirth: &dob})
	require.NoError(t, err)
	require.NotNil(t, p.DateOfBirth)
	assert.Equal(t, 1990, p.DateOfBirth.Year())

	bad := "12.04.1990"
	_, err = ValidatePlayerRequest(playerRequest{FirstName: "Jan", LastName: "Nowak", Position: model.PositionDefender, DateOfBirth: &bad})
	assert.Error(t, err)

	rate := 0
	_, err = ValidatePlayerRequest(playerRequest{FirstName: "Jan", LastName: "Nowak", Position: model.PositionDefender, SkillRate: &rate})
	assert.Error(t, err)
}

func TestParsePage(t *testing.T) {
	limit, offset, err := parsePage("20", "40")
	require.NoError(t, err)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 40, offset)

	_, _, err = parsePage("1000", "")
	assert.Error(t, err)
	_, _, err = parsePage("", "-1")
	assert.Error(t, err)
}
