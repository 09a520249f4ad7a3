package external

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>"World Cup 2026" - Google News</title>
    <item>
      <title>World Cup 2026 ticket sales open</title>
      <link>https://example.com/tickets</link>
      <pubDate>Mon, 31 Aug 2026 09:00:00 GMT</pubDate>
      <source url="https://example.com">Example Sport</source>
    </item>
    <item>
      <title>ICC Cricket World Cup warm-up report</title>
      <link>https://example.com/cricket</link>
    </item>
    <item>
      <title>U-19 World Cup squad announced</title>
      <link>https://example.com/u19</link>
    </item>
    <item>
      <title></title>
      <link>https://example.com/empty-title</link>
    </item>
    <item>
      <title>No link item</title>
    </item>
    <item>
      <title>Host cities prepare for World Cup 2026</title>
      <link>https://example.com/hosts</link>
      <pubDate>Sun, 30 Aug 2026 18:30:00 GMT</pubDate>
      <source url="https://example.org">Example News</source>
    </item>
  </channel>
</rss>`

func TestParseNewsFeedFilters(t *testing.T) {
	items, err := ParseNewsFeed([]byte(sampleRSS), 20)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "World Cup 2026 ticket sales open", items[0].Title)
	assert.Equal(t, "https://example.com/tickets", items[0].Link)
	assert.Equal(t, "Example Sport", items[0].Source)
	assert.Equal(t, "Mon, 31 Aug 2026 09:00:00 GMT", items[0].PubDate)

	assert.Equal(t, "Host cities prepare for World Cup 2026", items[1].Title)
}

func TestParseNewsFeedLimit(t *testing.T) {
	items, err := ParseNewsFeed([]byte(sampleRSS), 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "World Cup 2026 ticket sales open", items[0].Title)
}

func TestParseNewsFeedBadXML(t *testing.T) {
	_, err := ParseNewsFeed([]byte("not xml at all <"), 10)
	assert.Error(t, err)
}

func TestBadTitleFilter(t *testing.T) {
	bad := []string{
		"ICC announces schedule",
		"Cricket World Cup final",
		"U19 World Cup kicks off",
		"Under 19 World Cup highlights",
		"Rugby World Cup qualifiers",
		"T20 World Cup squads",
		"IPL and the World Cup window",
	}
	for _, title := range bad {
		assert.True(t, badTitleRe.MatchString(title), "title %q", title)
	}

	good := []string{
		"World Cup 2026 stadium guide",
		"FIFA confirms World Cup 2026 draw date",
	}
	for _, title := range good {
		assert.False(t, badTitleRe.MatchString(title), "title %q", title)
	}
}

func TestNewsServiceEdition(t *testing.T) {
	assert.Equal(t, "en-GB / GB", NewNewsService("").Edition())
	assert.Equal(t, "en-US / US", NewNewsService("US").Edition())
}

func TestNewsFeedURL(t *testing.T) {
	gb := NewNewsService("GB").feedURL("world cup")
	assert.Contains(t, gb, "news.google.com/rss/search")
	assert.Contains(t, gb, "ceid=GB:en")
	assert.Contains(t, gb, "world+cup")

	us := NewNewsService("US").feedURL("world cup")
	assert.Contains(t, us, "ceid=US:en")
}
