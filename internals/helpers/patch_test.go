package helper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patchProbe struct {
	Name  PatchField[string] `json:"name"`
	Notes PatchField[string] `json:"notes"`
}

func TestPatchFieldTriState(t *testing.T) {
	var p patchProbe
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Algebra","notes":null}`), &p))

	assert.True(t, p.Name.Present)
	require.NotNil(t, p.Name.Value)
	assert.Equal(t, "Algebra", *p.Name.Value)
	assert.True(t, p.Notes.Present)
	assert.Nil(t, p.Notes.Value)

	var empty patchProbe
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.False(t, empty.Name.Present)
	assert.False(t, empty.Notes.Present)
}

func TestApplyRejectsNullOnRequiredField(t *testing.T) {
	name := "History"
	err := Null[string]().Apply("name", &name)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "History", name)

	require.NoError(t, PatchField[string]{}.Apply("name", &name))
	assert.Equal(t, "History", name)

	require.NoError(t, Set("Physics").Apply("name", &name))
	assert.Equal(t, "Physics", name)
}

func TestApplyNullableClears(t *testing.T) {
	v := "note"
	dst := &v
	Null[string]().ApplyNullable(&dst)
	assert.Nil(t, dst)

	Set("again").ApplyNullable(&dst)
	require.NotNil(t, dst)
	assert.Equal(t, "again", *dst)
}

func TestJoinPatchErrors(t *testing.T) {
	assert.NoError(t, JoinPatchErrors(nil, nil))

	err := JoinPatchErrors(InvalidField("name", "cannot be null"), nil, InvalidField("date", "cannot be null"))
	var ae *AppError
	require.ErrorAs(t, err, &ae)
	assert.Len(t, ae.Fields, 2)
}
