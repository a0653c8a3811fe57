package compare

import (
	"reflect"
	"regexp"
	"testing"
)

func TestExtractBlocks(t *testing.T) {
	config := `hostname sw1
interface GigabitEthernet0/1
 description uplink
 switchport mode trunk
interface GigabitEthernet0/2
 description access
 switchport mode access
ip routing
`

	tests := []struct {
		name    string
		lines   []string
		pattern string
		opts    BlockOptions
		want    []Block
	}{
		{
			name:    "no matching parent",
			lines:   rawLines(config),
			pattern: "^interface TenGigabitEthernet",
			want:    nil,
		},
		{
			name:    "single block",
			lines:   rawLines(config),
			pattern: "^interface GigabitEthernet0/1$",
			want: []Block{
				{
					Parent:   "interface GigabitEthernet0/1",
					Children: []string{"description uplink", "switchport mode trunk"},
				},
			},
		},
		{
			name:    "multiple disjoint blocks",
			lines:   rawLines(config),
			pattern: "^interface GigabitEthernet",
			want: []Block{
				{
					Parent:   "interface GigabitEthernet0/1",
					Children: []string{"description uplink", "switchport mode trunk"},
				},
				{
					Parent:   "interface GigabitEthernet0/2",
					Children: []string{"description access", "switchport mode access"},
				},
			},
		},
		{
			name:    "keep block start",
			lines:   rawLines("interface Gi0/1\n shutdown\nip routing"),
			pattern: "^interface Gi0/1$",
			opts:    BlockOptions{KeepStart: true},
			want: []Block{
				{
					Parent:   "interface Gi0/1",
					Children: []string{"interface Gi0/1", "shutdown"},
				},
			},
		},
		{
			name:    "end pattern terminates block",
			lines:   rawLines("router ospf 1\n network 10.0.0.0 0.0.0.255 area 0\n !\n passive-interface default"),
			pattern: "^router ospf",
			opts:    BlockOptions{End: regexp.MustCompile("^!$")},
			want: []Block{
				{
					Parent:   "router ospf 1",
					Children: []string{"network 10.0.0.0 0.0.0.255 area 0"},
				},
			},
		},
		{
			name:    "keep block end",
			lines:   rawLines("router ospf 1\n router-id 1.1.1.1\n !\n"),
			pattern: "^router ospf",
			opts:    BlockOptions{End: regexp.MustCompile("^!$"), KeepEnd: true},
			want: []Block{
				{
					Parent:   "router ospf 1",
					Children: []string{"router-id 1.1.1.1", "!"},
				},
			},
		},
		{
			name:    "same indentation ends block",
			lines:   rawLines("interface Gi0/1\n description a\nhostname sw1"),
			pattern: "^interface",
			want: []Block{
				{
					Parent:   "interface Gi0/1",
					Children: []string{"description a"},
				},
			},
		},
		{
			name:    "parent with no children",
			lines:   rawLines("interface Gi0/1\nhostname sw1"),
			pattern: "^interface",
			want: []Block{
				{Parent: "interface Gi0/1"},
			},
		},
		{
			name:    "adjacent blocks without separator",
			lines:   rawLines("interface Gi0/1\n shutdown\ninterface Gi0/2\n shutdown"),
			pattern: "^interface",
			want: []Block{
				{Parent: "interface Gi0/1", Children: []string{"shutdown"}},
				{Parent: "interface Gi0/2", Children: []string{"shutdown"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractBlocks(tt.lines, regexp.MustCompile(tt.pattern), tt.opts)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractBlocks() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIndentOf(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"interface Gi0/1", 0},
		{" description x", 1},
		{"  ip address 10.0.0.1", 2},
		{"\tshutdown", 1},
		{"   ", 3},
	}

	for _, tt := range tests {
		if got := indentOf(tt.line); got != tt.want {
			t.Errorf("indentOf(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}
