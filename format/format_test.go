package format

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/decdev/types"
)

func TestCopyFromIsDeep(t *testing.T) {
	src := Format{
		Category:  types.MediaTypeVideo,
		Codec:     types.NewCodecID('h', '2', '6', '4'),
		Video:     VideoFormat{Width: 1920, Height: 1080},
		ExtraData: []byte{1, 2, 3},
	}

	var dst Format
	dst.CopyFrom(&src)
	require.Equal(t, src, dst)

	src.ExtraData[0] = 42
	require.EqualValues(t, 1, dst.ExtraData[0])
}

func TestCopyFromReleasesPreviousData(t *testing.T) {
	var dst Format
	dst.ExtraData = []byte{9, 9, 9}

	src := Format{Category: types.MediaTypeAudio}
	dst.CopyFrom(&src)
	require.Nil(t, dst.ExtraData)
	require.Equal(t, types.MediaTypeAudio, dst.Category)
}

func TestInitResets(t *testing.T) {
	f := Format{
		Category:  types.MediaTypeVideo,
		Codec:     types.NewCodecID('h', '2', '6', '4'),
		Video:     VideoFormat{Width: 1280, Height: 720},
		ExtraData: []byte{1},
	}

	f.Init(types.MediaTypeVideo, types.CodecIDNone)
	require.Equal(t, Format{Category: types.MediaTypeVideo}, f)
}

func TestClean(t *testing.T) {
	f := Format{ExtraData: []byte{1, 2}}
	f.Clean()
	require.Nil(t, f.ExtraData)
	f.Clean() // clean of a clean format must not fault
}
