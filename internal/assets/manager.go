package assets

import (
	"bytes"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	loadOnce sync.Once
	regular  *text.GoTextFaceSource
	bold     *text.GoTextFaceSource

	faceMu sync.Mutex
	faces  = map[faceKey]*text.GoTextFace{}
)

type faceKey struct {
	bold bool
	size float64
}

// loadSources parses the embedded Go fonts once.
func loadSources() {
	var err error
	regular, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("Failed to parse regular font: %v", err)
	}
	bold, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Fatalf("Failed to parse bold font: %v", err)
	}
}

// Face returns a cached regular face at size px.
func Face(size float64) *text.GoTextFace {
	return face(faceKey{size: size})
}

// BoldFace returns a cached bold face at size px.
func BoldFace(size float64) *text.GoTextFace {
	return face(faceKey{bold: true, size: size})
}

func face(k faceKey) *text.GoTextFace {
	loadOnce.Do(loadSources)

	faceMu.Lock()
	defer faceMu.Unlock()
	if f, ok := faces[k]; ok {
		return f
	}
	src := regular
	if k.bold {
		src = bold
	}
	f := &text.GoTextFace{Source: src, Size: k.size}
	faces[k] = f
	return f
}
