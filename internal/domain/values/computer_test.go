package values

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewComputer(t *testing.T) {
	c, err := NewComputer("i5", "16", "512")
	require.NoError(t, err)

	assert.Equal(t, "i5", c.CPU())
	assert.Equal(t, "16", c.RAM())
	assert.Equal(t, "512", c.Disk())
	assert.Equal(t, "CPU:i5\tRAM:16\tDisk:512", c.String())
}

func Test_NewComputer_NoisyInput(t *testing.T) {
	noisy, err := NewComputer(" Intel i5 ", "16gb", "512GB")
	require.NoError(t, err)

	plain := MustNewComputer("i5", "16", "512")
	assert.True(t, plain.Equals(noisy))
	assert.Equal(t, plain.String(), noisy.String())
}

func Test_NewComputer_CPUNormalization(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"i5", "i5"},
		{"I5", "i5"},
		{" i5 ", "i5"},
		{"Intel i5", "i5"},
		{"intel I5", "i5"},
		{"AMD i5", "i5"},
		{"i7", "i7"},
		{"I7", "i7"},
		{"\ti7\n", "i7"},
		{"Intel Core i7", "i7"},
		{"amd i7", "i7"},
		{"i 7", "i7"},
		{"i5processor", "i5"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := NewComputer(tt.input, "16", "512")
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.CPU())
		})
	}
}

func Test_NewComputer_InvalidCPU(t *testing.T) {
	for _, input := range []string{"i9", "arm", "", "   ", "intel", "amd"} {
		t.Run(input, func(t *testing.T) {
			_, err := NewComputer(input, "16", "512")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)

			var argErr *InvalidArgumentError
			require.True(t, errors.As(err, &argErr))
			assert.Equal(t, FieldCPU, argErr.Field)
			assert.Equal(t, input, argErr.Value)
			assert.Equal(t, []string{"i5", "i7"}, argErr.Accepted)
		})
	}
}

func Test_NewComputer_InvalidCPU_Message(t *testing.T) {
	_, err := NewComputer("i9", "16", "512")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cpu")
	assert.Contains(t, err.Error(), "'i9'")
	assert.Contains(t, err.Error(), "i5")
	assert.Contains(t, err.Error(), "i7")
}

func Test_NewComputer_NumberNormalization(t *testing.T) {
	tests := []struct {
		name  string
		ram   string
		disk  string
		wantR string
		wantD string
	}{
		{"plain", "16", "512", "16", "512"},
		{"upper unit", "16GB", "1024GB", "16", "1024"},
		{"lower unit", "16gb", "1024gb", "16", "1024"},
		{"padded", " 16 ", " 1024 ", "16", "1024"},
		{"spaced unit", "32 GB", "512 gb", "32", "512"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewComputer("i5", tt.ram, tt.disk)
			require.NoError(t, err)
			assert.Equal(t, tt.wantR, c.RAM())
			assert.Equal(t, tt.wantD, c.Disk())
		})
	}
}

func Test_NewComputer_InvalidNumbers(t *testing.T) {
	tests := []struct {
		name      string
		ram       string
		disk      string
		wantField string
		wantValue string
	}{
		{"ram not whitelisted", "8", "512", FieldRAM, "8"},
		{"ram no digits", "lots", "512", FieldRAM, "lots"},
		{"ram empty", "", "512", FieldRAM, ""},
		{"disk not whitelisted", "16", "256GB", FieldDisk, "256GB"},
		{"disk no digits", "16", "big", FieldDisk, "big"},
		{"ram checked before disk", "64", "2048", FieldRAM, "64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewComputer("i5", tt.ram, tt.disk)
			var argErr *InvalidArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.wantField, argErr.Field)
			assert.Equal(t, tt.wantValue, argErr.Value)
		})
	}
}

func Test_NewComputer_FieldOrder(t *testing.T) {
	_, err := NewComputer("i9", "8", "1")
	var argErr *InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, FieldCPU, argErr.Field)
}

func Test_MustNewComputer_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustNewComputer("i9", "16", "512")
	})
}

func Test_Computer_RoundTrip(t *testing.T) {
	original := MustNewComputer("Intel i5", "16GB", "512")

	fields := map[string]string{}
	for _, part := range strings.Split(original.String(), "\t") {
		kv := strings.SplitN(part, ":", 2)
		require.Len(t, kv, 2)
		fields[kv[0]] = kv[1]
	}

	rebuilt, err := NewComputer(fields["CPU"], fields["RAM"], fields["Disk"])
	require.NoError(t, err)
	assert.True(t, original.Equals(rebuilt))
	assert.Equal(t, original.Key(), rebuilt.Key())
}

func Test_Computer_ReadsAreIdempotent(t *testing.T) {
	c := MustNewComputer("i7", "32", "1024")
	for i := 0; i < 3; i++ {
		assert.Equal(t, "i7", c.CPU())
		assert.Equal(t, "32", c.RAM())
		assert.Equal(t, "1024", c.Disk())
		assert.Equal(t, "CPU:i7\tRAM:32\tDisk:1024", c.String())
	}
}

func Test_Computer_EqualsAndKey(t *testing.T) {
	a := MustNewComputer("i5", "16", "512")
	b := MustNewComputer("INTEL i5", "16gb", "512")
	c := MustNewComputer("i5", "32", "512")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())

	set := map[Computer]int{a: 1}
	set[b]++
	assert.Len(t, set, 1)
	assert.Equal(t, 2, set[a])
}

func Test_Computer_IsZero(t *testing.T) {
	assert.True(t, Computer{}.IsZero())
	assert.False(t, MustNewComputer("i5", "16", "512").IsZero())
}

func Test_InvalidArgumentError_Absent(t *testing.T) {
	err := NewAbsentArgumentError(FieldDisk)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, "disk must not be absent", err.Error())
}

func Test_InvalidArgumentError_CopiesAccepted(t *testing.T) {
	accepted := []string{"a", "b"}
	err := NewInvalidArgumentError("x", "c", accepted)
	accepted[0] = "z"
	assert.Equal(t, []string{"a", "b"}, err.Accepted)
	assert.Equal(t, "invalid x value: 'c'. valid options: [a, b]", err.Error())
}
