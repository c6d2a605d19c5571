package resend

import (
	"context"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	html, err := render([]string{"guitar", "<b>run</b>"}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "end in 4 hours") {
		t.Errorf("missing hours in %q", html)
	}
	if !strings.Contains(html, "<li>guitar</li>") {
		t.Errorf("missing habit in %q", html)
	}
	if strings.Contains(html, "<b>run</b>") {
		t.Errorf("habit names must be escaped: %q", html)
	}
}

func TestSendNudge_RequiresSettings(t *testing.T) {
	n := &ResendNotifier{}
	if err := n.SendNudge(context.Background(), []string{"guitar"}, 2); err == nil {
		t.Fatal("expected error without api key")
	}
}
