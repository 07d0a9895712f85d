package filter

import (
	"testing"

	"github.com/viktorchvatal/nanocv/core"
)

func TestMirrorHorizontal(t *testing.T) {
	src := core.MustFromSlice(core.NewSize(3, 2), []uint8{
		1, 2, 3,
		4, 5, 6,
	})
	got := MirrorHorizontalNew[uint8](src)
	want := core.MustFromSlice(core.NewSize(3, 2), []uint8{
		3, 2, 1,
		6, 5, 4,
	})
	if !got.Equal(want) {
		t.Error("horizontal mirror mismatch")
	}
}

func TestMirrorVertical(t *testing.T) {
	src := core.MustFromSlice(core.NewSize(2, 3), []uint8{
		1, 2,
		3, 4,
		5, 6,
	})
	got := MirrorVerticalNew[uint8](src)
	want := core.MustFromSlice(core.NewSize(2, 3), []uint8{
		5, 6,
		3, 4,
		1, 2,
	})
	if !got.Equal(want) {
		t.Error("vertical mirror mismatch")
	}
}

func TestMirrorTwiceIsIdentity(t *testing.T) {
	src := core.MustFromSlice(core.NewSize(3, 3), []int32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	if !MirrorHorizontalNew[int32](MirrorHorizontalNew[int32](src)).Equal(src) {
		t.Error("double horizontal mirror is not identity")
	}
	if !MirrorVerticalNew[int32](MirrorVerticalNew[int32](src)).Equal(src) {
		t.Error("double vertical mirror is not identity")
	}
}
