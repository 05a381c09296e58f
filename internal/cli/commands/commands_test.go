package commands

import (
	"bytes"
	"compress/gzip"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testDate = "2026-02-15"

const testLog = `[14:55:00] [Server thread/INFO]: Steve joined the game
[15:00:00] [Server thread/INFO]: Steve » heading to the nether
[15:04:30] [Server thread/INFO]: ☠ Steve was slain by Zombie (Extra: World:world, X:100, Y:64, Z:-200)
[15:05:00] [Server thread/INFO]: Alex » rip steve
[15:06:00] [Server thread/INFO]: HerobrineBot » beep boop
[15:10:00] [Server thread/INFO]: Steve left the game
`

// newTestServer writes a server directory with one gzipped archive for
// testDate and returns its path.
func newTestServer(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	logsDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		t.Fatalf("Failed to create logs dir: %v", err)
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte(testLog)); err != nil {
		t.Fatalf("Failed to compress log: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("Failed to close gzip writer: %v", err)
	}
	path := filepath.Join(logsDir, testDate+"-1.log.gz")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write archive: %v", err)
	}
	return dir
}

// newTestBots writes a personalities file naming HerobrineBot as a bot.
func newTestBots(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "personalities.json")
	content := `[{"username": "HerobrineBot", "personality": "helpful"}]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write bots file: %v", err)
	}
	return path
}

func setTestEnv(t *testing.T, serverDir, botsFile string) {
	t.Helper()
	t.Setenv("XNMC_SERVER_DIR", serverDir)
	t.Setenv("XNMC_BOTS_FILE", botsFile)
}

// newTestWiki serves a wiki where every page is missing.
func newTestWiki(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"query":{"pages":{"-1":{"missing":""}}}}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// newTestPlayerData writes a usercache entry and an advancements file for
// one player.
func newTestPlayerData(t *testing.T, dir, name, uuid string) {
	t.Helper()

	usercache := `[{"uuid": "` + uuid + `", "name": "` + name + `"}]`
	if err := os.WriteFile(filepath.Join(dir, "usercache.json"), []byte(usercache), 0644); err != nil {
		t.Fatalf("Failed to write usercache: %v", err)
	}

	advDir := filepath.Join(dir, "world", "advancements")
	if err := os.MkdirAll(advDir, 0755); err != nil {
		t.Fatalf("Failed to create advancements dir: %v", err)
	}
	advancements := `{
		"minecraft:story/mine_diamond": {"done": true},
		"minecraft:recipes/misc/charcoal": {"done": true},
		"DataVersion": 3700
	}`
	if err := os.WriteFile(filepath.Join(advDir, uuid+".json"), []byte(advancements), 0644); err != nil {
		t.Fatalf("Failed to write advancements: %v", err)
	}
}

func TestNewDeathsCommand(t *testing.T) {
	cmd := NewDeathsCommand()

	if cmd.Use != "deaths [date]" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}
	for _, flag := range []string{"config", "verbose"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}
}

func TestNewChatCommand(t *testing.T) {
	cmd := NewChatCommand()

	if cmd.Use != "chat [date]" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}
	for _, flag := range []string{"player", "around", "window"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}
}

func TestRunDeaths(t *testing.T) {
	dir := newTestServer(t)
	setTestEnv(t, dir, newTestBots(t, dir))

	cmd := NewDeathsCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{testDate})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Steve") {
		t.Errorf("Missing player in output:\n%s", got)
	}
	if !strings.Contains(got, "was slain by Zombie") {
		t.Errorf("Missing cause in output:\n%s", got)
	}
	if strings.Contains(got, "X:100") || strings.Contains(got, "Extra:") {
		t.Errorf("Location leaked into output:\n%s", got)
	}
	// 15:04:30 UTC is 10:04 AM EST.
	if !strings.Contains(got, "10:04 AM") {
		t.Errorf("Expected EST time in output:\n%s", got)
	}
}

func TestRunDeaths_NoDeaths(t *testing.T) {
	dir := newTestServer(t)
	setTestEnv(t, dir, newTestBots(t, dir))

	cmd := NewDeathsCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"2026-02-16"})

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error for a date with no logs")
	}
}

func TestRunChat_FullDay(t *testing.T) {
	dir := newTestServer(t)
	setTestEnv(t, dir, newTestBots(t, dir))

	cmd := NewChatCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{testDate})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "<Steve> heading to the nether") {
		t.Errorf("Missing Steve's message:\n%s", got)
	}
	if !strings.Contains(got, "<Alex> rip steve") {
		t.Errorf("Missing Alex's message:\n%s", got)
	}
	if strings.Contains(got, "HerobrineBot") {
		t.Errorf("Bot message not filtered:\n%s", got)
	}
}

func TestRunChat_AroundDeath(t *testing.T) {
	dir := newTestServer(t)
	setTestEnv(t, dir, newTestBots(t, dir))

	cmd := NewChatCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{testDate, "--player", "Steve"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Steve's death") {
		t.Errorf("Missing death header:\n%s", got)
	}
	if !strings.Contains(got, "heading to the nether <<<") {
		t.Errorf("Steve's own message not marked:\n%s", got)
	}
	if !strings.Contains(got, "rip steve") {
		t.Errorf("Missing windowed message:\n%s", got)
	}
}

func TestRunChat_AroundAllChat(t *testing.T) {
	dir := newTestServer(t)
	setTestEnv(t, dir, newTestBots(t, dir))

	cmd := NewChatCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{testDate, "--around", "15:04:00", "--window", "3"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	// 15:01:00-15:07:00 UTC holds Alex's message but not Steve's 15:00:00.
	got := out.String()
	if !strings.Contains(got, "rip steve") {
		t.Errorf("Missing in-window message:\n%s", got)
	}
	if strings.Contains(got, "heading to the nether") {
		t.Errorf("Out-of-window message included:\n%s", got)
	}
	if strings.Contains(got, "<<<") {
		t.Errorf("Unexpected target marker in all-chat window:\n%s", got)
	}
}

func TestRunChat_DeathAnchorWindowFlag(t *testing.T) {
	dir := newTestServer(t)
	setTestEnv(t, dir, newTestBots(t, dir))

	cmd := NewChatCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{testDate, "--player", "Steve", "--window", "1"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	// One minute back from the 15:04:30 death excludes 15:00:00; the fixed
	// five minutes forward still holds Alex's 15:05:00.
	got := out.String()
	if strings.Contains(got, "heading to the nether") {
		t.Errorf("Message outside the back window included:\n%s", got)
	}
	if !strings.Contains(got, "rip steve") {
		t.Errorf("Missing forward-window message:\n%s", got)
	}
}

func TestRunChat_PlayerAroundAnchor(t *testing.T) {
	dir := newTestServer(t)
	setTestEnv(t, dir, newTestBots(t, dir))

	cmd := NewChatCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	// Alex has no death; the anchor is a UTC wall-clock time.
	cmd.SetArgs([]string{testDate, "--player", "Alex", "--around", "15:05:00"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "rip steve <<<") {
		t.Errorf("Anchor player's message not marked:\n%s", got)
	}
	if !strings.Contains(got, "heading to the nether") {
		t.Errorf("Missing message from the 30-minute back window:\n%s", got)
	}
}

func TestRunChat_OwnMessagesFallback(t *testing.T) {
	dir := newTestServer(t)
	setTestEnv(t, dir, newTestBots(t, dir))

	cmd := NewChatCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{testDate, "--player", "Alex"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "rip steve") {
		t.Errorf("Missing Alex's message:\n%s", got)
	}
	if strings.Contains(got, "heading to the nether") {
		t.Errorf("Unexpected other speaker in own-messages output:\n%s", got)
	}
}

func TestRunVersion(t *testing.T) {
	cmd := NewVersionCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(out.String(), "xn-mc") {
		t.Errorf("Unexpected version output: %s", out.String())
	}
}

func TestRunPlayer_AdvancementDisplayNames(t *testing.T) {
	dir := newTestServer(t)
	setTestEnv(t, dir, newTestBots(t, dir))
	newTestPlayerData(t, dir, "Alex", "aaaa-1111")
	t.Setenv("XNMC_WIKI_URL", newTestWiki(t).URL)

	cmd := NewPlayerCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"Alex"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Diamonds!") {
		t.Errorf("Advancement not mapped to display name:\n%s", got)
	}
	if strings.Contains(got, "minecraft:story/mine_diamond") {
		t.Errorf("Raw advancement ID leaked into output:\n%s", got)
	}
}

func TestRunBriefing_AdvancementDisplayNames(t *testing.T) {
	dir := newTestServer(t)
	setTestEnv(t, dir, newTestBots(t, dir))
	newTestPlayerData(t, dir, "Steve", "bbbb-2222")
	t.Setenv("XNMC_WIKI_URL", newTestWiki(t).URL)

	cmd := NewBriefingCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{testDate})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "## DEATH 1: Steve") {
		t.Fatalf("Missing death detail:\n%s", got)
	}
	if !strings.Contains(got, "Advancements (1): Diamonds!") {
		t.Errorf("Advancement not mapped to display name:\n%s", got)
	}
	if strings.Contains(got, "minecraft:story/mine_diamond") {
		t.Errorf("Raw advancement ID leaked into output:\n%s", got)
	}
}

func TestResolveDate(t *testing.T) {
	if _, err := resolveDate([]string{"2026-02-15"}); err != nil {
		t.Errorf("Valid date rejected: %v", err)
	}
	if _, err := resolveDate([]string{"15-02-2026"}); err == nil {
		t.Error("Expected error for malformed date")
	}
	got, err := resolveDate(nil)
	if err != nil {
		t.Fatalf("Default date failed: %v", err)
	}
	if len(got) != len("2006-01-02") {
		t.Errorf("Unexpected default date format: %s", got)
	}
}

func TestParseAnchor(t *testing.T) {
	anchor, err := parseAnchor("2026-02-15", "15:04:30")
	if err != nil {
		t.Fatalf("parseAnchor failed: %v", err)
	}
	// The clock is UTC wall time, matching the log envelope.
	want := time.Date(2026, 2, 15, 15, 4, 30, 0, time.UTC)
	if !anchor.Equal(want) {
		t.Errorf("Anchor = %v, want %v", anchor, want)
	}

	if _, err := parseAnchor("2026-02-15", "25:99"); err == nil {
		t.Error("Expected error for malformed clock")
	}
}
