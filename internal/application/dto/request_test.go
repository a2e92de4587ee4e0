package dto

import (
	"testing"

	apperrors "github.com/rigbook/rigbook/internal/application/errors"
	"github.com/rigbook/rigbook/internal/domain/entities"
	"github.com/rigbook/rigbook/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestDeviceRequest_ToDevice(t *testing.T) {
	d, err := NewDesktopRequest("i7", "32", "1024", "nvidia").ToDevice()
	require.NoError(t, err)
	assert.Equal(t, "Type:Desktop\tCPU:i7\tRAM:32\tDisk:1024\tGPU:Nvidia", d.String())

	l, err := NewLaptopRequest("Intel i5", "16GB", "512", " 13 ").ToDevice()
	require.NoError(t, err)
	assert.Equal(t, "Type:Laptop\tCPU:i5\tRAM:16\tDisk:512\tScreen:13", l.String())
}

func TestDeviceRequest_AbsentFields(t *testing.T) {
	tests := []struct {
		name      string
		req       DeviceRequest
		wantField string
	}{
		{"cpu", DeviceRequest{Kind: ptr("d"), RAM: ptr("16"), Disk: ptr("512"), GPU: ptr("AMD")}, values.FieldCPU},
		{"ram", DeviceRequest{Kind: ptr("d"), CPU: ptr("i5"), Disk: ptr("512"), GPU: ptr("AMD")}, values.FieldRAM},
		{"disk", DeviceRequest{Kind: ptr("l"), CPU: ptr("i5"), RAM: ptr("16"), Screen: ptr("13")}, values.FieldDisk},
		{"gpu", DeviceRequest{Kind: ptr("d"), CPU: ptr("i5"), RAM: ptr("16"), Disk: ptr("512")}, "gpu"},
		{"screen", DeviceRequest{Kind: ptr("l"), CPU: ptr("i5"), RAM: ptr("16"), Disk: ptr("512")}, "screen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.ToDevice()
			require.ErrorIs(t, err, values.ErrInvalidArgument)

			var argErr *values.InvalidArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.True(t, argErr.Absent)
			assert.Equal(t, tt.wantField, argErr.Field)
		})
	}
}

func TestDeviceRequest_VariantWhitelist(t *testing.T) {
	_, err := NewDesktopRequest("i5", "16", "512", "Matrox").ToDevice()
	var argErr *values.InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "gpu", argErr.Field)
	assert.Equal(t, []string{"Nvidia", "AMD"}, argErr.Accepted)

	_, err = NewLaptopRequest("i5", "16", "512", "15").ToDevice()
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "screen", argErr.Field)
}

func TestDeviceRequest_ProfileErrorPropagates(t *testing.T) {
	_, err := NewLaptopRequest("i9", "16", "512", "13").ToDevice()
	var argErr *values.InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, values.FieldCPU, argErr.Field)
	assert.Equal(t, "i9", argErr.Value)
}

func TestDeviceRequest_Kind(t *testing.T) {
	var valErr *apperrors.ValidationError

	_, err := DeviceRequest{CPU: ptr("i5")}.ToDevice()
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "kind", valErr.Field)

	_, err = DeviceRequest{Kind: ptr("tablet")}.ToDevice()
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "kind", valErr.Field)
}

func TestDeviceRequest_MisplacedVariantField(t *testing.T) {
	req := NewLaptopRequest("i5", "16", "512", "13")
	req.GPU = ptr("AMD")

	_, err := req.ToDevice()
	var valErr *apperrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "gpu", valErr.Field)
}

func TestDeviceRequest_ToDeviceOfKind_IgnoresKind(t *testing.T) {
	req := NewLaptopRequest("i5", "16", "512", "14")
	req.Kind = nil

	d, err := req.ToDeviceOfKind(values.KindLaptop)
	require.NoError(t, err)
	assert.Equal(t, values.KindLaptop, d.Kind())
}

func TestNewDeviceView(t *testing.T) {
	entry := entities.NewEntry(entities.MustNewDesktop("i5", "16", "512", "AMD"))
	v := NewDeviceView(3, entry)

	assert.Equal(t, 3, v.Position)
	assert.Equal(t, entry.ID.String(), v.ID)
	assert.Equal(t, "Desktop", v.Kind)
	assert.Equal(t, "AMD", v.GPU)
	assert.Empty(t, v.Screen)
	assert.Equal(t, entry.Device.String(), v.Display)
}
