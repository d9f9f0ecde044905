package utils_test

import (
	"strings"
	"testing"

	"photodesk/pkg/utils"
)

func TestParseInt(t *testing.T) {
	if got := utils.ParseInt("25", 10); got != 25 {
		t.Fatalf("ParseInt(\"25\") = %d, want 25", got)
	}
	if got := utils.ParseInt("", 10); got != 10 {
		t.Fatalf("empty string = %d, want default 10", got)
	}
	if got := utils.ParseInt("abc", 10); got != 10 {
		t.Fatalf("garbage = %d, want default 10", got)
	}
	if got := utils.ParseInt("-3", 10); got != 10 {
		t.Fatalf("negative = %d, want default 10", got)
	}
}

func TestParseFloat(t *testing.T) {
	got, ok := utils.ParseFloat("-33.8688")
	if !ok || got != -33.8688 {
		t.Fatalf("ParseFloat = %v, %v", got, ok)
	}
	if _, ok := utils.ParseFloat(""); ok {
		t.Fatal("empty string reported as parsed")
	}
	if _, ok := utils.ParseFloat("north"); ok {
		t.Fatal("garbage reported as parsed")
	}
}

func TestGenerateInvoiceNumber(t *testing.T) {
	number := utils.GenerateInvoiceNumber()
	if !strings.HasPrefix(number, "INV-") {
		t.Fatalf("invoice number %q missing INV- prefix", number)
	}
	if parts := strings.Split(number, "-"); len(parts) != 4 {
		t.Fatalf("invoice number %q not in INV-date-time-random form", number)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	if !utils.CheckPassword(hash, "correct horse battery staple") {
		t.Fatal("correct password rejected")
	}
	if utils.CheckPassword(hash, "wrong password") {
		t.Fatal("wrong password accepted")
	}
}

func TestCalculateTotalPages(t *testing.T) {
	if got := utils.CalculateTotalPages(45, 10); got != 5 {
		t.Fatalf("45/10 = %d pages, want 5", got)
	}
	if got := utils.CalculateTotalPages(0, 10); got != 0 {
		t.Fatalf("empty set = %d pages, want 0", got)
	}
	if got := utils.CalculateTotalPages(10, 0); got != 0 {
		t.Fatalf("zero per page = %d pages, want 0", got)
	}
}
