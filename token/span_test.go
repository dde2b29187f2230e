// Copyright 2024 The SV Elaborator Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanJoin(t *testing.T) {
	a := Span{File: 0, Lo: 3, Hi: 7}
	b := Span{File: 0, Lo: 5, Hi: 12}
	assert.Equal(t, Span{File: 0, Lo: 3, Hi: 12}, a.Join(b))
	assert.Equal(t, Span{File: 0, Lo: 3, Hi: 12}, b.Join(a))
}

func TestSpanJoinZero(t *testing.T) {
	a := Span{File: 0, Lo: 3, Hi: 7}
	assert.Equal(t, a, a.Join(Span{}))
	assert.Equal(t, a, Span{}.Join(a))
}

func TestSpanJoinDifferentFilesPanics(t *testing.T) {
	a := Span{File: 0, Lo: 0, Hi: 1}
	b := Span{File: 1, Lo: 0, Hi: 1}
	assert.Panics(t, func() { a.Join(b) })
}

func TestSpanCollapsed(t *testing.T) {
	a := Span{File: 2, Lo: 10, Hi: 20}
	c := a.Collapsed()
	assert.Equal(t, Span{File: 2, Lo: 10, Hi: 10}, c)
	assert.True(t, c.Lo == c.Hi)
}

func TestSpanZero(t *testing.T) {
	assert.True(t, Span{}.Zero())
	assert.False(t, (Span{File: 1}).Zero())
}

func TestSpannedWrapsValue(t *testing.T) {
	sp := Span{File: 0, Lo: 1, Hi: 4}
	s := NewSpanned("foo", sp)
	require.Equal(t, "foo", s.Val)
	assert.Equal(t, sp, s.Span)
}
