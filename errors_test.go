package fastasplit

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{
			&Error{Kind: KindInvalidArgumentCount, Count: 2},
			"invalid number of arguments provided: expected 1 argument (FASTA sequences file), provided 2 argument(s)",
		},
		{&Error{Kind: KindNotFound, Path: "x.fasta"}, "FASTA sequences file not found: 'x.fasta'"},
		{
			&Error{Kind: KindInvalidExtension, Path: "x.txt", Extensions: DefaultExtensions},
			"'x.txt': only FASTA extension files (.fa, .faa, .fasta, .ffn, .fna or .frn) are allowed",
		},
		{&Error{Kind: KindNoDescriptionLine, Path: "x.fa"}, "'x.fa' has no description line"},
		{
			&Error{Kind: KindMalformedDescriptionLines, Path: "x.fa", Count: 2},
			"'x.fa' contains 2 line(s) with invalid description format",
		},
		{&Error{Kind: KindEmptyFile, Path: "x.fa"}, "'x.fa' seems an empty FASTA file"},
		{
			&Error{Kind: KindIO, Op: "write record", Path: "d/a.fa", Err: fs.ErrPermission},
			"write record: io failure 'd/a.fa': permission denied",
		},
	}
	for _, tt := range tests {
		t.Run(tt.err.Kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("split: %w", &Error{Kind: KindIO, Path: "a.fa", Err: fs.ErrPermission})

	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.NotErrorIs(t, err, ErrNotFound)

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindIO, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestListExtensions(t *testing.T) {
	assert.Equal(t, ".fasta", listExtensions([]string{"fasta"}))
	assert.Equal(t, ".fa or .fasta", listExtensions([]string{"fa", "fasta"}))
}
