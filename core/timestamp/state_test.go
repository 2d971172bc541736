// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package timestamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func TestState_TypingDoesNotParse(t *testing.T) {
	s := NewState(testNow).SetInput("1744953600")
	assert.True(t, s.DateTime.Equal(testNow))

	s = s.Commit()
	assert.Equal(t, int64(1744953600), s.DateTime.Unix())
}

func TestState_InvalidInputKeepsDate(t *testing.T) {
	s := NewState(testNow).SetInput("1744953600").Commit()
	prev := s.DateTime

	s = s.SetInput("not a number").Commit()
	assert.True(t, s.DateTime.Equal(prev))
	assert.Equal(t, Unset, s.Format)
}

func TestState_InferenceIsNotSticky(t *testing.T) {
	s := NewState(testNow).SetInput("1744953600000").Commit()
	assert.Equal(t, Unset, s.Format)

	res, ok := s.Detected()
	require.True(t, ok)
	assert.Equal(t, Milliseconds, res.Format)
	assert.True(t, res.Inferred)
}

func TestState_SelectFormatReparses(t *testing.T) {
	s := NewState(testNow).SetInput("100000").Commit()
	assert.Equal(t, int64(100000), s.DateTime.Unix())

	s = s.SelectFormat(Milliseconds)
	assert.Equal(t, Milliseconds, s.Format)
	assert.Equal(t, int64(100000), s.DateTime.UnixMilli())
	assert.Equal(t, "1970-01-01", s.DateTime.UTC().Format("2006-01-02"))

	// sticky across later commits regardless of length
	s = s.SetInput("42").Commit()
	assert.Equal(t, int64(42), s.DateTime.UnixMilli())

	// back to auto re-infers
	s = s.SelectFormat(Unset)
	assert.Equal(t, int64(42), s.DateTime.Unix())
}

func TestState_SelectFormatWithEmptyInput(t *testing.T) {
	s := NewState(testNow).SelectFormat(Seconds)
	assert.Equal(t, Seconds, s.Format)
	assert.True(t, s.DateTime.Equal(testNow))

	_, ok := s.Detected()
	assert.False(t, ok)
}

func TestState_OutputFormatOnlyChangesNumber(t *testing.T) {
	s := NewState(testNow).SetInput("1744953600000").Commit()
	date := s.DateTime
	assert.Equal(t, int64(1744953600000), s.Formatted())

	s = s.SelectOutputFormat(Seconds)
	assert.True(t, s.DateTime.Equal(date))
	assert.Equal(t, int64(1744953600), s.Formatted())

	s = s.SelectOutputFormat(Milliseconds)
	assert.True(t, s.DateTime.Equal(date))
	assert.Equal(t, int64(1744953600000), s.Formatted())

	s = s.SelectOutputFormat(Unset)
	assert.Equal(t, int64(1744953600000), s.Formatted())
}

// Selecting seconds as the input unit re-reads the same digits as seconds, so
// the displayed number stays the digits that were typed.
func TestState_InputFormatSwitchReinterprets(t *testing.T) {
	s := NewState(testNow).SetInput("1744953600000").Commit()
	s = s.SelectFormat(Seconds)
	assert.Equal(t, int64(1744953600000), s.Formatted())
	assert.Equal(t, int64(1744953600000), s.DateTime.Unix())
}

func TestState_RoundTripAsymmetry(t *testing.T) {
	s := NewState(testNow).SetInput("1744953600").Commit()
	res, ok := s.Detected()
	require.True(t, ok)
	assert.Equal(t, Seconds, res.Format)
	// output-side inference looks at the 13 digit millisecond epoch
	assert.Equal(t, int64(1744953600000), s.Formatted())
}
