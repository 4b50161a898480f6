// Package embeddings loads pre-trained word-vector models from disk into the
// in-memory representation the similarity filter consumes.
package embeddings

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/internal/domain/embedding"
	"github.com/matthewstachyra/virtual-assistant-utterance-generator/pkg/errors"
)

// maxLineBytes bounds a single vector line.  300-dimension models with long
// tokens stay well under this.
const maxLineBytes = 1 << 20

// Load reads a word2vec-style text model from path.  The format is one word
// per line followed by its vector components, all space-separated; an
// optional first line carrying just "<count> <dimensions>" is recognised and
// skipped.  Every vector must have the same dimensionality.
func Load(path string) (embedding.MapModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeModelLoadFailed, "failed to open embedding model").WithDetail(path)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Read parses a word2vec-style text model from r.  See Load for the format.
func Read(r io.Reader) (embedding.MapModel, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	m := make(embedding.MapModel)
	dim := 0
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		// Header line: "<count> <dimensions>".
		if line == 1 && len(fields) == 2 {
			if _, err := strconv.Atoi(fields[0]); err == nil {
				if _, err := strconv.Atoi(fields[1]); err == nil {
					continue
				}
			}
		}

		if len(fields) < 2 {
			return nil, errors.Newf(errors.ErrCodeModelLoadFailed,
				"line %d: expected a word followed by vector components", line)
		}

		word := fields[0]
		vec := make([]float32, 0, len(fields)-1)
		for _, raw := range fields[1:] {
			v, err := strconv.ParseFloat(raw, 32)
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrCodeModelLoadFailed,
					"malformed vector component").WithDetail("line=" + strconv.Itoa(line) + " word=" + word)
			}
			vec = append(vec, float32(v))
		}

		if dim == 0 {
			dim = len(vec)
		} else if len(vec) != dim {
			return nil, errors.Newf(errors.ErrCodeModelLoadFailed,
				"line %d: vector for %q has %d dimensions, expected %d", line, word, len(vec), dim)
		}
		m[word] = vec
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeModelLoadFailed, "failed to read embedding model")
	}
	return m, nil
}
