package playlistfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/radar-whisper/radar-whisper/internal/model"
)

// M3U syntax markers
const (
	m3uHeader     = "#EXTM3U"
	m3uInfoPrefix = "#EXTINF:"
)

func saveM3U(p *model.Playlist, path string) error {
	var b strings.Builder
	b.WriteString(m3uHeader + "\n")

	for _, track := range p.Tracks {
		seconds := int(track.Metadata.Duration.Round(time.Second).Seconds())
		if track.Metadata.Duration <= 0 {
			seconds = -1
		}
		b.WriteString(fmt.Sprintf("%s%d,%s - %s\n", m3uInfoPrefix, seconds,
			track.DisplayArtist(), track.DisplayTitle()))
		b.WriteString(track.Path + "\n")
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}

func loadM3U(path string) (*model.Playlist, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	p := model.NewPlaylist(playlistName(path))

	var (
		skipped  []string
		title    string
		artist   string
		duration time.Duration
	)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line == m3uHeader {
			continue
		}

		if strings.HasPrefix(line, m3uInfoPrefix) {
			title, artist, duration = parseExtInf(line)
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		full := resolvePath(line, path)
		if _, err := os.Stat(full); err != nil {
			skipped = append(skipped, full)
		} else {
			p.Tracks = append(p.Tracks, model.NewTrack(full, model.Metadata{
				Title:    title,
				Artist:   artist,
				Duration: duration,
			}))
		}

		title, artist, duration = "", "", 0
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return p, skipped, nil
}

// parseExtInf parses "#EXTINF:123,Artist - Title" (artist optional)
func parseExtInf(line string) (title, artist string, duration time.Duration) {
	info := strings.TrimPrefix(line, m3uInfoPrefix)

	durationPart, titlePart, found := strings.Cut(info, ",")
	if !found {
		return "", "", 0
	}

	if secs, err := strconv.ParseFloat(strings.TrimSpace(durationPart), 64); err == nil && secs > 0 {
		duration = time.Duration(secs * float64(time.Second))
	}

	if a, t, found := strings.Cut(titlePart, " - "); found {
		return strings.TrimSpace(t), strings.TrimSpace(a), duration
	}
	return strings.TrimSpace(titlePart), "", duration
}
