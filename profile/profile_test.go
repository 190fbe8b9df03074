package profile

import (
	"os"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfile(t *testing.T) {
	prof := Default()
	assert.Equal(t, "mips64-edu", prof.ISA)

	spec, ok := prof.Lookup("ADD")
	require.True(t, ok)
	assert.Equal(t, 1, spec.Destination)
	assert.Equal(t, []int{2, 3}, spec.Sources)

	spec, ok = prof.Lookup("ADDI")
	require.True(t, ok)
	assert.Equal(t, 1, spec.Destination)
	assert.Equal(t, []int{2}, spec.Sources)

	// LD tracks no source: the base register of offset(base) is not modeled.
	spec, ok = prof.Lookup("LD")
	require.True(t, ok)
	assert.Equal(t, 1, spec.Destination)
	assert.Empty(t, spec.Sources)

	// SD is store-like: reads value and base registers, writes nothing.
	spec, ok = prof.Lookup("SD")
	require.True(t, ok)
	assert.Equal(t, 0, spec.Destination)
	assert.Equal(t, []int{1, 3}, spec.Sources)

	for _, branch := range []string{"BEQ", "BNE", "BLTZ", "BGTZ", "BGEZ", "BLEZ"} {
		spec, ok = prof.Lookup(branch)
		require.True(t, ok, branch)
		assert.Equal(t, 0, spec.Destination, branch)
		assert.Equal(t, []int{1, 2}, spec.Sources, branch)
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	prof := Default()

	lower, ok := prof.Lookup("add")
	require.True(t, ok)
	mixed, ok := prof.Lookup("Add")
	require.True(t, ok)
	upper, ok := prof.Lookup("ADD")
	require.True(t, ok)

	assert.Equal(t, upper, lower)
	assert.Equal(t, upper, mixed)
}

func TestLookupUnknown(t *testing.T) {
	prof := Default()

	spec, ok := prof.Lookup("FOO")
	assert.False(t, ok)
	assert.Equal(t, 0, spec.Destination)
	assert.Empty(t, spec.Sources)

	_, ok = prof.Lookup("")
	assert.False(t, ok)
}

func TestLookupReturnsCopy(t *testing.T) {
	prof := Default()

	spec, ok := prof.Lookup("ADD")
	require.True(t, ok)
	spec.Sources[0] = 99
	spec.Destination = 99

	again, ok := prof.Lookup("ADD")
	require.True(t, ok)
	assert.Equal(t, 1, again.Destination)
	assert.Equal(t, []int{2, 3}, again.Sources)
}

func TestMnemonics(t *testing.T) {
	prof := Default()
	mnemonics := prof.Mnemonics()

	assert.Len(t, mnemonics, 20)
	assert.True(t, sort.StringsAreSorted(mnemonics))
	assert.Contains(t, mnemonics, "DADDI")
	assert.Contains(t, mnemonics, "SGT")
}

func TestLoadProfile(t *testing.T) {
	tempFile, err := os.CreateTemp("", "isa.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tempFile.Name())

	content := `isa: toy
instructions:
  - mnemonic: mov
    destination: 1
    sources: [2]
`
	if _, err := tempFile.WriteString(content); err != nil {
		t.Fatal(err)
	}
	tempFile.Close()

	prof, err := LoadProfile(tempFile.Name())
	require.NoError(t, err)
	assert.Equal(t, "toy", prof.ISA)

	// Mnemonic keys are canonicalized to upper case at load.
	spec, ok := prof.Lookup("MOV")
	require.True(t, ok)
	assert.Equal(t, 1, spec.Destination)
	assert.Equal(t, []int{2}, spec.Sources)
}

func TestLoadProfileErrors(t *testing.T) {
	_, err := LoadProfile("does-not-exist.yaml")
	assert.Error(t, err)

	tempFile, err := os.CreateTemp("", "broken.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tempFile.Name())
	if _, err := tempFile.WriteString("instructions: {not: [a, list"); err != nil {
		t.Fatal(err)
	}
	tempFile.Close()

	_, err = LoadProfile(tempFile.Name())
	assert.Error(t, err)

	tempFile2, err := os.CreateTemp("", "nameless.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tempFile2.Name())
	if _, err := tempFile2.WriteString("instructions:\n  - destination: 1\n"); err != nil {
		t.Fatal(err)
	}
	tempFile2.Close()

	_, err = LoadProfile(tempFile2.Name())
	assert.Error(t, err)
}
