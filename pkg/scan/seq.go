package scan

import (
	"bufio"
	"io"
)

// ChunkSeq yields the successive byte chunks of a sequence. Next returns
// io.EOF after the last chunk; any other error terminates the sequence
// abnormally.
type ChunkSeq interface {
	Next() ([]byte, error)
}

// RuneSeq yields the successive runes of a sequence. Next returns io.EOF
// after the last rune.
type RuneSeq interface {
	Next() (rune, error)
}

// Lines returns a ChunkSeq yielding the lines of r, each including its
// trailing newline if it has one. A final line without a newline is yielded
// as-is.
func Lines(r *bufio.Reader) ChunkSeq { return lineSeq{r} }

type lineSeq struct{ r *bufio.Reader }

func (s lineSeq) Next() ([]byte, error) {
	line, err := s.r.ReadBytes('\n')
	if len(line) > 0 {
		// A non-empty final line may come with io.EOF; deliver the line now
		// and the EOF on the next call.
		return line, nil
	}
	if err == nil {
		err = io.EOF
	}
	return nil, err
}

// Runes returns a RuneSeq yielding the runes of r. Invalid UTF-8 bytes are
// yielded as U+FFFD, one per byte, following the behavior of
// (*bufio.Reader).ReadRune.
func Runes(r io.RuneReader) RuneSeq { return runeSeq{r} }

type runeSeq struct{ r io.RuneReader }

func (s runeSeq) Next() (rune, error) {
	r, _, err := s.r.ReadRune()
	return r, err
}

// StringChunks returns a ChunkSeq yielding each string as one chunk. It is
// convenient for callers holding the sequence in memory.
func StringChunks(chunks ...string) ChunkSeq {
	return &stringChunkSeq{chunks: chunks}
}

type stringChunkSeq struct {
	chunks []string
	i      int
}

func (s *stringChunkSeq) Next() ([]byte, error) {
	if s.i >= len(s.chunks) {
		return nil, io.EOF
	}
	chunk := []byte(s.chunks[s.i])
	s.i++
	return chunk, nil
}

// StringRunes returns a RuneSeq yielding the runes of s.
func StringRunes(s string) RuneSeq {
	return &stringRuneSeq{runes: []rune(s)}
}

type stringRuneSeq struct {
	runes []rune
	i     int
}

func (s *stringRuneSeq) Next() (rune, error) {
	if s.i >= len(s.runes) {
		return 0, io.EOF
	}
	r := s.runes[s.i]
	s.i++
	return r, nil
}
