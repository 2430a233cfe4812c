package artifact

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/crimezones/internal/model"
)

func zone(id, name string, z model.Zone) model.RiskZone {
	return model.RiskZone{
		ID:               id,
		Name:             name,
		Lat:              -3.1190,
		Lng:              -60.0217,
		RadiusMeters:     500,
		RiskLevel:        model.RiskLow,
		CrimeTypes:       []string{"Robbery", "Theft"},
		MonthlyIncidents: 10,
		Zone:             z,
		SafetyTip:        `Prefer "main" streets.`,
		PeakHours:        "18h - 23h",
	}
}

func TestAssemble_Order(t *testing.T) {
	in := []model.RiskZone{
		zone("japiim", "Japiim", model.ZoneCentroOeste),
		zone("zumbi", "Zumbi", model.ZoneLeste),
		zone("outro", "Outro", model.Zone("Rural")),
		zone("educandos", "Educandos", model.ZoneSul),
		zone("centro", "Centro", model.ZoneCentroSul),
		zone("coroado", "Coroado", model.ZoneLeste),
		zone("adrianopolis", "Adrianópolis", model.ZoneCentroOeste),
		zone("aparecida", "Aparecida", model.ZoneCentroOeste),
	}

	got := Assemble(in)
	var ids []string
	for _, z := range got {
		ids = append(ids, z.ID)
	}
	want := []string{"centro", "educandos", "coroado", "zumbi", "adrianopolis", "aparecida", "japiim", "outro"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("Assemble order = %v, want %v", ids, want)
	}
	if in[0].ID != "japiim" {
		t.Error("Assemble must not reorder its input")
	}
}

func TestAssemble_AccentedNamesCollate(t *testing.T) {
	in := []model.RiskZone{
		zone("sao-raimundo", "São Raimundo", model.ZoneOeste),
		zone("santo-agostinho", "Santo Agostinho", model.ZoneOeste),
		zone("redencao", "Redenção", model.ZoneOeste),
	}
	got := Assemble(in)
	want := []string{"Redenção", "Santo Agostinho", "São Raimundo"}
	for i, z := range got {
		if z.Name != want[i] {
			t.Errorf("position %d: got %q, want %q", i, z.Name, want[i])
		}
	}
}

func TestGroupByZone(t *testing.T) {
	zones := Assemble([]model.RiskZone{
		zone("a", "A", model.ZoneSul),
		zone("b", "B", model.ZoneCentroSul),
		zone("c", "C", model.ZoneSul),
	})
	groups := GroupByZone(zones)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Zone != model.ZoneCentroSul || len(groups[1].Zones) != 2 {
		t.Errorf("unexpected groups %+v", groups)
	}
}

func testArtifact() Artifact {
	return Artifact{
		Year:        2024,
		GeneratedAt: time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC),
		Source:      "anuario-2024.pdf",
		RunID:       "01HZX3J5Q8Y0S1N9K2M4T6V8W0",
		Zones: Assemble([]model.RiskZone{
			zone("compensa", "Compensa", model.ZoneOeste),
			zone("centro", "Centro", model.ZoneCentroSul),
		}),
	}
}

func TestRender_TypeScript(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, testArtifact(), FormatTS); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Anuário Estatístico de Segurança Pública 2024",
		"Generated by crimezones on 09/03/2026.",
		" * Source: anuario-2024.pdf",
		"export interface CrimeZone {",
		"export const CRIME_ZONES: CrimeZone[] = [\n  // ===== ZONA CENTRO-SUL =====\n  {\n    id: \"centro\",",
		"  // ===== ZONA OESTE =====",
		"    lat: -3.119,\n",
		"    crimeTypes: [\"Robbery\", \"Theft\"],",
		`    safetyTip: "Prefer \"main\" streets.",`,
		"  },\n];",
		"export function haversineDistance(",
		"export function getRiskLabel(",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("typescript output missing %q", want)
		}
	}

	if strings.Index(out, "ZONA CENTRO-SUL") > strings.Index(out, "ZONA OESTE") {
		t.Error("zone groups out of order")
	}
}

func TestRender_Deterministic(t *testing.T) {
	for _, f := range []Format{FormatTS, FormatJSON, FormatYAML} {
		var a, b bytes.Buffer
		if err := Render(&a, testArtifact(), f); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if err := Render(&b, testArtifact(), f); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if !bytes.Equal(a.Bytes(), b.Bytes()) {
			t.Errorf("%s output differs between runs", f)
		}
	}
}

func TestReadIDs_RoundTrip(t *testing.T) {
	for _, f := range []Format{FormatTS, FormatJSON, FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Render(&buf, testArtifact(), f); err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			ids, err := ReadIDs(&buf, f)
			if err != nil {
				t.Fatalf("ReadIDs failed: %v", err)
			}
			want := []string{"centro", "compensa"}
			if !reflect.DeepEqual(ids, want) {
				t.Errorf("ReadIDs = %v, want %v", ids, want)
			}
		})
	}
}

func TestReadIDs_HandWrittenTS(t *testing.T) {
	src := `export const CRIME_ZONES = [
  { id: "centro", name: "Centro" },
  {
    id:"compensa",
  },
];`
	ids, err := ReadIDs(strings.NewReader(src), FormatTS)
	if err != nil {
		t.Fatalf("ReadIDs failed: %v", err)
	}
	if !reflect.DeepEqual(ids, []string{"centro", "compensa"}) {
		t.Errorf("unexpected ids %v", ids)
	}
}

func TestReadIDs_BadJSON(t *testing.T) {
	if _, err := ReadIDs(strings.NewReader("{"), FormatJSON); err == nil {
		t.Error("expected an error for malformed json")
	}
}

func TestMergeReport(t *testing.T) {
	zones := []model.RiskZone{
		zone("centro", "Centro", model.ZoneCentroSul),
		zone("japiim", "Japiim", model.ZoneCentroOeste),
	}
	m := MergeReport([]string{"centro", "compensa", "flores", "compensa"}, zones)

	if m.Previous != 4 {
		t.Errorf("expected 4 previous ids, got %d", m.Previous)
	}
	if !reflect.DeepEqual(m.Preserved, []string{"compensa", "flores"}) {
		t.Errorf("Preserved = %v", m.Preserved)
	}
	if !reflect.DeepEqual(m.Refreshed, []string{"centro"}) {
		t.Errorf("Refreshed = %v", m.Refreshed)
	}
	if !reflect.DeepEqual(m.Added, []string{"japiim"}) {
		t.Errorf("Added = %v", m.Added)
	}
}

func TestFormats(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"crimeZones.ts", FormatTS},
		{"out/zones.JSON", FormatJSON},
		{"zones.yml", FormatYAML},
		{"zones.yaml", FormatYAML},
		{"zones", FormatTS},
	}
	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}

	if f, err := ParseFormat("YML"); err != nil || f != FormatYAML {
		t.Errorf("ParseFormat(YML) = %q, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
}
