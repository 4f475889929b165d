package utils

import (
	"strings"
	"testing"
)

func TestComposeMessageBlocksHeaderInjection(t *testing.T) {
	subject := "hello\r\nBcc: attacker@evil.test\r\nX-Injected: yes"
	msg := composeMessage("Site", "noreply@example.com", "admin@example.com", subject, "body text")

	headerPart, _, ok := strings.Cut(msg, "\r\n\r\n")
	if !ok {
		t.Fatalf("message has no header/body separator: %q", msg)
	}
	for _, line := range strings.Split(headerPart, "\r\n") {
		if strings.HasPrefix(line, "Bcc:") || strings.HasPrefix(line, "X-Injected:") {
			t.Fatalf("injected header line survived: %q", line)
		}
	}
	if !strings.Contains(headerPart, "Subject: helloBcc: attacker@evil.testX-Injected: yes") {
		t.Errorf("subject not collapsed to a single line:\n%s", headerPart)
	}
}

func TestComposeMessageSanitizesFromName(t *testing.T) {
	msg := composeMessage("Site\r\nReply-To: attacker@evil.test", "noreply@example.com", "admin@example.com", "subj", "body")
	if strings.Contains(msg, "\r\nReply-To:") {
		t.Fatalf("from name injected a header:\n%s", msg)
	}
	if !strings.Contains(msg, "From: SiteReply-To: attacker@evil.test <noreply@example.com>") {
		t.Errorf("from name not collapsed to a single line:\n%s", msg)
	}
}

func TestEncodeRFC2047(t *testing.T) {
	if got := encodeRFC2047("plain ascii"); got != "plain ascii" {
		t.Errorf("ascii changed: %q", got)
	}
	if got := encodeRFC2047("héllo"); !strings.HasPrefix(got, "=?UTF-8?B?") {
		t.Errorf("non-ascii not encoded: %q", got)
	}
}
