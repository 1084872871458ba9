package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOfferLatest_ReplacesUnreadValue(t *testing.T) {
	ch := make(chan int, 1)

	offerLatest(ch, 1)
	offerLatest(ch, 2)
	offerLatest(ch, 3)

	assert.Equal(t, 3, <-ch)
	select {
	case v := <-ch:
		t.Fatalf("unexpected extra value %d", v)
	default:
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"status", "set", "toggle", "cycle", "pick", "watch", "css", "preview", "config", "init", "doctor", "version"} {
		assert.True(t, names[want], "missing command %q", want)
	}
}
