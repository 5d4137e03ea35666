package fastasplit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivePrefix(t *testing.T) {
	assert.Equal(t, "", DerivePrefix("sequences.fasta"))
	assert.Equal(t, "dir/", DerivePrefix("dir/seq.fasta"))
	assert.Equal(t, "/data/genomes/", DerivePrefix("/data/genomes/seq.fasta"))
	assert.Equal(t, "/", DerivePrefix("/seq.fasta"))
}

func TestDeriveExtension(t *testing.T) {
	assert.Equal(t, "fasta", DeriveExtension("dir/seq.fasta"))
	assert.Equal(t, "fa", DeriveExtension("seq.tar.fa"))
	assert.Equal(t, "", DeriveExtension("seq"))
	assert.Equal(t, "", DeriveExtension("v1.2/seq"))
	assert.Equal(t, "", DeriveExtension("seq."))
}

func TestDeriveIndexFileName(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, "dir_Sequences_List.txt", DeriveIndexFileName("dir/", opts))
	assert.Equal(t, "a/b_Sequences_List.txt", DeriveIndexFileName("a/b/", opts))
	assert.Equal(t, "Sequences_List.txt", DeriveIndexFileName("", opts))
	assert.Equal(t, "Sequences_List.txt", DeriveIndexFileName("/", opts))
	assert.Equal(t, "dir.idx", DeriveIndexFileName("dir/", Options{IndexSuffix: ".idx"}))
}

func TestDeriveIndexFileNameFromInput(t *testing.T) {
	assert.Equal(t, "dir_Sequences_List.txt", DeriveIndexFileName(DerivePrefix("dir/seq.fasta"), DefaultOptions()))
}

func TestRecordFilePath(t *testing.T) {
	assert.Equal(t, "dir/Sequence1.fasta", RecordFilePath("dir/", "Sequence1", "fasta"))
	assert.Equal(t, "Sequence1.fa", RecordFilePath("", "Sequence1", "fa"))
}
