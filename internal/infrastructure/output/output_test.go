package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/rigbook/rigbook/internal/application/dto"
	"github.com/rigbook/rigbook/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestView creates a two-device listing for testing.
func createTestView() dto.InventoryView {
	laptop := entities.NewEntry(entities.MustNewLaptop("i5", "16", "512", "13"))
	desktop := entities.NewEntry(entities.MustNewDesktop("i7", "32", "1024", "Nvidia"))

	return dto.InventoryView{
		Total: 2,
		Devices: []dto.DeviceView{
			dto.NewDeviceView(1, laptop),
			dto.NewDeviceView(2, desktop),
		},
	}
}

func TestTableFormatter_Format(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, NewTableFormatter(buf).Format(createTestView()))

	want := "=========\n" +
		"LIST OF COMPUTERS:-\n" +
		"1: Type:Laptop\tCPU:i5\tRAM:16\tDisk:512\tScreen:13\n" +
		"2: Type:Desktop\tCPU:i7\tRAM:32\tDisk:1024\tGPU:Nvidia\n" +
		"=========\n"
	assert.Equal(t, want, buf.String())
}

func TestTableFormatter_Empty(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, NewTableFormatter(buf).Format(dto.InventoryView{}))

	assert.Equal(t, "=========\nLIST OF COMPUTERS:-\n=========\n", buf.String())
}

func TestTableFormatter_FilterKeepsPositions(t *testing.T) {
	view := createTestView()
	view.Filter = `kind == "Desktop"`
	view.Devices = view.Devices[1:]

	buf := &bytes.Buffer{}
	require.NoError(t, NewTableFormatter(buf).Format(view))

	output := buf.String()
	assert.Contains(t, output, "Filter: kind == \"Desktop\" (1 of 2)\n")
	assert.Contains(t, output, "2: Type:Desktop")
	assert.NotContains(t, output, "Type:Laptop")
}

func TestTableFormatter_Color(t *testing.T) {
	buf := &bytes.Buffer{}
	f := NewTableFormatter(buf)
	f.EnableColor = true
	require.NoError(t, f.Format(createTestView()))

	output := buf.String()
	assert.Contains(t, output, colorCyan+"1"+colorReset+": Type:Laptop\tCPU:i5")
	assert.Contains(t, output, colorBold+"LIST OF COMPUTERS:-"+colorReset)
}

func TestTableFormatter_FormatBatch(t *testing.T) {
	resp := &dto.BatchResponse{
		Inventory: createTestView(),
		Rejections: []dto.Rejection{
			{Position: 3, Field: "cpu", Message: "invalid cpu value: 'i9'. valid options: [i5, i7]"},
		},
	}

	buf := &bytes.Buffer{}
	require.NoError(t, NewTableFormatter(buf).FormatBatch(resp))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "Rejected #3: invalid cpu value: 'i9'. valid options: [i5, i7]", lines[0])
	assert.Equal(t, "=========", lines[1])
}

func TestJSONFormatter_Format(t *testing.T) {
	tests := []struct {
		name   string
		indent bool
	}{
		{"compact", false},
		{"indented", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			require.NoError(t, NewJSONFormatter(buf, tt.indent).Format(createTestView()))

			var decoded map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

			assert.EqualValues(t, 2, decoded["total"])
			assert.NotContains(t, decoded, "filter")

			devices, ok := decoded["devices"].([]interface{})
			require.True(t, ok)
			require.Len(t, devices, 2)

			first := devices[0].(map[string]interface{})
			assert.Equal(t, "Laptop", first["kind"])
			assert.Equal(t, "13", first["screen"])
			assert.NotContains(t, first, "gpu")
			assert.EqualValues(t, 1, first["position"])

			assert.Equal(t, tt.indent, strings.Contains(buf.String(), "\n  "))
		})
	}
}

func TestJSONFormatter_FormatBatch(t *testing.T) {
	resp := &dto.BatchResponse{
		Inventory:  createTestView(),
		Rejections: []dto.Rejection{{Position: 2, Field: "gpu", Message: "gpu must not be absent"}},
	}

	buf := &bytes.Buffer{}
	require.NoError(t, NewJSONFormatter(buf, false).FormatBatch(resp))

	var decoded dto.BatchResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, resp.Rejections, decoded.Rejections)
	assert.Len(t, decoded.Inventory.Devices, 2)
}

func TestYAMLFormatter_Format(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, NewYAMLFormatter(buf).Format(createTestView()))

	output := buf.String()
	assert.Contains(t, output, "total: 2")
	assert.Contains(t, output, "kind: Desktop")
	assert.Contains(t, output, "gpu: Nvidia")
	assert.Contains(t, output, `display: "Type:Desktop\tCPU:i7\tRAM:32\tDisk:1024\tGPU:Nvidia"`)
	assert.NotContains(t, output, "\t")

	var decoded dto.InventoryView
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Devices, 2)
	assert.Equal(t, 2, decoded.Devices[1].Position)
	assert.Equal(t, "Type:Desktop\tCPU:i7\tRAM:32\tDisk:1024\tGPU:Nvidia", decoded.Devices[1].Display)
}

func TestQuoteControl(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Nvidia", "Nvidia"},
		{"a\tb", `"a\tb"`},
		{"line\nbreak", `"line\nbreak"`},
		{"13", `"13"`},
		{"", `""`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := quoteControl(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))

			var back string
			require.NoError(t, yaml.Unmarshal(got, &back))
			assert.Equal(t, tt.in, back)
		})
	}
}

func TestYAMLFormatter_FormatBatch(t *testing.T) {
	resp := &dto.BatchResponse{Inventory: dto.InventoryView{Total: 0, Devices: []dto.DeviceView{}}}

	buf := &bytes.Buffer{}
	require.NoError(t, NewYAMLFormatter(buf).FormatBatch(resp))

	assert.Contains(t, buf.String(), "inventory:")
	assert.NotContains(t, buf.String(), "rejections")
}
