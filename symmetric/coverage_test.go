package symmetric

import (
	"bytes"
	"sync"
	"testing"

	kprism "github.com/BackendStack21/k-prism-go"
)

func TestXOFReabsorbDiscardsPosition(t *testing.T) {
	for _, suite := range suites() {
		var seed [kprism.SeedBytes]byte
		bb := suite.BlockBytes()

		s := suite.NewXOF()
		s.Absorb(&seed, 8, 8)
		first := make([]byte, bb)
		s.SqueezeBlocks(first, 1)

		// Advance the stream, then re-absorb: the position must reset.
		s.SqueezeBlocks(make([]byte, 2*bb), 2)
		s.Absorb(&seed, 8, 8)
		again := make([]byte, bb)
		s.SqueezeBlocks(again, 1)

		if !bytes.Equal(first, again) {
			t.Errorf("%s: re-absorb did not discard the stream position", suite.Mode())
		}
	}
}

func TestXOFZeroBlockSqueeze(t *testing.T) {
	for _, suite := range suites() {
		var seed [kprism.SeedBytes]byte
		bb := suite.BlockBytes()

		s := suite.NewXOF()
		s.Absorb(&seed, 0, 0)
		s.SqueezeBlocks(nil, 0) // no-op, must not advance the stream

		got := make([]byte, bb)
		s.SqueezeBlocks(got, 1)

		s2 := suite.NewXOF()
		s2.Absorb(&seed, 0, 0)
		want := make([]byte, bb)
		s2.SqueezeBlocks(want, 1)

		if !bytes.Equal(got, want) {
			t.Errorf("%s: zero-block squeeze advanced the stream", suite.Mode())
		}
	}
}

func TestXOFOversizedBufferOnlyWritesBlocks(t *testing.T) {
	for _, suite := range suites() {
		var seed [kprism.SeedBytes]byte
		bb := suite.BlockBytes()

		buf := make([]byte, 2*bb)
		for i := range buf {
			buf[i] = 0xEE
		}

		s := suite.NewXOF()
		s.Absorb(&seed, 0, 0)
		s.SqueezeBlocks(buf, 1)

		for i := bb; i < len(buf); i++ {
			if buf[i] != 0xEE {
				t.Errorf("%s: squeeze wrote past the requested blocks", suite.Mode())
				break
			}
		}
	}
}

// Independent instances share no state and may run fully in parallel.
func TestXOFConcurrentInstances(t *testing.T) {
	for _, suite := range suites() {
		suite := suite
		var seed [kprism.SeedBytes]byte
		bb := suite.BlockBytes()

		want := make([][]byte, 8)
		for i := range want {
			s := suite.NewXOF()
			s.Absorb(&seed, byte(i), 0)
			want[i] = make([]byte, 2*bb)
			s.SqueezeBlocks(want[i], 2)
		}

		got := make([][]byte, 8)
		var wg sync.WaitGroup
		for i := range got {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				s := suite.NewXOF()
				s.Absorb(&seed, byte(i), 0)
				got[i] = make([]byte, 2*bb)
				s.SqueezeBlocks(got[i][:bb], 1)
				s.SqueezeBlocks(got[i][bb:], 1)
			}()
		}
		wg.Wait()

		for i := range got {
			if !bytes.Equal(got[i], want[i]) {
				t.Errorf("%s: concurrent instance %d diverged", suite.Mode(), i)
			}
		}
	}
}
