package terminal

import (
	"errors"
	"strings"
	"testing"

	"vendordash/internal/model"
	"vendordash/internal/service/vendor"
)

func TestRenderDashboard_Basic(t *testing.T) {
	t.Parallel()

	card := vendor.Card{
		Title: "V001 · Pizza Palace",
		Record: model.VendorRecord{
			VendorCode: "V001", VendorName: "Pizza Palace", OwnerName: "Ann",
			Phone: "-", Email: "-", Location: "Springfield, IL",
			Category: "Restaurant", CuisineText: "Italian", ServiceModel: "-", ServingCapacity: "500",
		},
	}
	out := RenderDashboard(vendor.Dashboard{Mode: vendor.ModeBasic, Basic: &vendor.BasicView{Vendor: &card}})

	for _, want := range []string{"Vendor overview", "V001 · Pizza Palace", "Primary location", "Owner details", "Vendor details", "Springfield, IL", "Italian"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderDashboard_AdvancedEmpty(t *testing.T) {
	t.Parallel()

	out := RenderDashboard(vendor.Dashboard{
		Mode:     vendor.ModeAdvanced,
		Advanced: &vendor.AdvancedView{Summary: "Showing 0 vendor(s) matching the filters.", Message: vendor.MsgNoMatches},
	})
	if !strings.Contains(out, "Showing 0 vendor(s)") || !strings.Contains(out, vendor.MsgNoMatches) {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "Owner details") {
		t.Fatalf("no panels expected")
	}
}

func TestRenderError(t *testing.T) {
	t.Parallel()

	if out := RenderError(errors.New("boom")); !strings.Contains(out, "boom") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRenderDashboard_BasicPrompt(t *testing.T) {
	t.Parallel()

	out := RenderDashboard(vendor.Dashboard{Mode: vendor.ModeBasic, Basic: &vendor.BasicView{Message: vendor.MsgSelectVendor}})
	if !strings.Contains(out, RenderPrompt(vendor.MsgSelectVendor)) {
		t.Fatalf("prompt not rendered:\n%s", out)
	}
	if strings.Contains(out, "Owner details") {
		t.Fatalf("no panels expected")
	}
}
