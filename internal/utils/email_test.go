package utils

import (
	"strings"
	"testing"
)

func TestGenerateOrderHTML(t *testing.T) {
	order := sampleOrder()
	order.Items = append(order.Items, order.Items[0])
	order.Username = "<ravi>"

	out := GenerateOrderHTML(order)

	for _, want := range []string{"ORD-3f2a9c1e", "₹180.00", "&lt;ravi&gt;", "01/05/2024 10:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
	if n := strings.Count(out, "Gongura Pickle"); n != 2 {
		t.Errorf("duplicate items should be listed separately, found %d rows", n)
	}
	if strings.Contains(out, "<ravi>") {
		t.Error("username must be escaped")
	}
}

func TestGenerateOrderHTMLGuest(t *testing.T) {
	if out := GenerateOrderHTML(sampleOrder()); !strings.Contains(out, "invité") {
		t.Error("anonymous orders should be labelled as guest")
	}
}

func TestGenerateContactHTML(t *testing.T) {
	out := GenerateContactHTML(ContactMessage{Name: "Anu", Email: "anu@example.com", Message: "<b>hi</b>"})
	if !strings.Contains(out, "anu@example.com") || strings.Contains(out, "<b>hi</b>") {
		t.Fatalf("unexpected contact HTML: %s", out)
	}
}

func TestOrderEmailSubject(t *testing.T) {
	if got := OrderEmailSubject(sampleOrder()); !strings.Contains(got, "ORD-3f2a9c1e") || !strings.Contains(got, "2 articles") {
		t.Fatalf("OrderEmailSubject() = %q", got)
	}
}
