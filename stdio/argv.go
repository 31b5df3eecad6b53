package stdio

import (
	"bytes"
	"os"

	"github.com/unio-sh/unio/charenc"
	"github.com/unio-sh/unio/stream"
	"github.com/unio-sh/unio/surrogate"
)

// BinaryArgv returns the process arguments as raw byte strings encoded
// with the filesystem encoding. Surrogate escapes introduced by
// earlier text handling are restored, so binary-unsafe arguments round
// trip without loss.
func BinaryArgv() [][]byte {
	fsEnc := charenc.FilesystemEncoding()
	args := make([][]byte, len(os.Args))
	for i, a := range os.Args {
		args[i] = argvBytes(a, fsEnc)
	}
	return args
}

func argvBytes(a, fsEnc string) []byte {
	raw := surrogate.Unescape(a)
	if charenc.Equal(fsEnc, "utf-8") {
		return raw
	}
	// A non-UTF-8 filesystem encoding only occurs on platforms whose
	// reporting we trust; transcode best effort and keep the raw bytes
	// when that fails.
	var buf bytes.Buffer
	tw, err := stream.NewTextWriter(&buf, fsEnc, charenc.Replace)
	if err != nil {
		return raw
	}
	if _, err := tw.Write(raw); err != nil {
		return raw
	}
	if err := tw.Flush(); err != nil {
		return raw
	}
	return buf.Bytes()
}
