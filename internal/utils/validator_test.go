package utils

import (
	"bytes"
	"testing"
)

// 测试内容：用户名与密码规则校验。
func TestValidateUsername(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
	}{
		{"alice_01", true},
		{"Bob", true},
		{"", false},
		{"has space", false},
		{"中文名", false},
	}
	for _, c := range cases {
		if ok, _ := ValidateUsername(c.name); ok != c.ok {
			t.Fatalf("ValidateUsername(%q) = %v，期望 %v", c.name, ok, c.ok)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		pass string
		ok   bool
	}{
		{"abc12345", true},
		{"short1", false},
		{"onlyletters", false},
		{"12345678", false},
		{"pass_word9!", true},
	}
	for _, c := range cases {
		if ok, _ := ValidatePassword(c.pass); ok != c.ok {
			t.Fatalf("ValidatePassword(%q) = %v，期望 %v", c.pass, ok, c.ok)
		}
	}
}

// 测试内容：文件内容与扩展名不匹配时拒绝。
func TestValidateImageContent_MismatchedExt(t *testing.T) {
	// PNG magic number
	pngHeader := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	reader := bytes.NewReader(pngHeader)

	if ok, _ := ValidateImageContent(reader, ".jpg"); ok {
		t.Fatalf("期望 png content with .jpg ext to be rejected")
	}

	reader2 := bytes.NewReader(pngHeader)
	if ok, msg := ValidateImageContent(reader2, ".png"); !ok {
		t.Fatalf("期望 png content with .png ext to pass，msg=%s", msg)
	}
}
