package stegotext

import (
	"context"

	"github.com/yyyoichi/stegotext/imgio"
)

// EncodeFile embeds a secret into the image at inputPath and writes the
// result to outputPath. The output is always PNG regardless of the input
// format, so the embedded bits survive the round trip to disk.
func (c *Codec) EncodeFile(ctx context.Context, inputPath, secret, outputPath string) error {
	src, _, err := imgio.Load(inputPath)
	if err != nil {
		return err
	}
	out, err := c.Encode(ctx, src, secret)
	if err != nil {
		return err
	}
	return imgio.SavePNG(out, outputPath)
}

// DecodeFile recovers a secret from the image file at path.
func (c *Codec) DecodeFile(ctx context.Context, path string) (string, error) {
	src, _, err := imgio.Load(path)
	if err != nil {
		return "", err
	}
	return c.Decode(ctx, src)
}
