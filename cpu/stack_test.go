package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())

	s.Push(0x12)
	s.Push(0x1ff)
	s.Push(-1)
	assert.False(s.Empty())
	assert.Equal([]uint8{0x12, 0xff, 0xff}, s.Data)
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(0x12)
	s.Push(0xAB)

	assert.Equal(uint8(0xAB), s.Pop())
	assert.Equal(1, s.Len())
	assert.Equal(uint8(0x12), s.Pop())
	assert.Equal(0, s.Len())
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.Equal(uint8(0), s.Pop())
	assert.Equal(uint8(0), s.Pop())
	assert.True(s.Empty())
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	_, ok := s.Peek()
	assert.False(ok)

	s.Push(0x12)
	s.Push(0xAB)

	val, ok := s.Peek()
	assert.True(ok)
	assert.Equal(uint8(0xAB), val)
	assert.Equal(2, s.Len())
}

func TestStack_Resize(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(7)
	s.Resize(3)
	assert.Equal([]uint8{7, 0, 0}, s.Data)

	s.Resize(1)
	assert.Equal([]uint8{7}, s.Data)

	s.Resize(0)
	assert.True(s.Empty())
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(1)
	s.Push(2)
	s.Reset()
	assert.True(s.Empty())

	s.Reset()
	assert.True(s.Empty())
}
