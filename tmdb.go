package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Candidate is one catalog search result.
type Candidate struct {
	ID              string
	DisplayName     string
	Year            int
	AlternateTitles []string
}

// Searcher is the title-search collaborator. Implementations return
// candidates in their own relevance order; the resolver re-scores them
// and never assumes that ordering is authoritative.
type Searcher interface {
	Search(title string, year int, kind MediaKind) ([]Candidate, error)
}

type TMDbAPI struct {
	APIKey string
	Cache  *searchCache

	client *resty.Client
}

func NewTMDbAPI(apiKey string, cache *searchCache) *TMDbAPI {
	client := resty.New().
		SetBaseURL("https://api.themoviedb.org/3").
		SetTimeout(15 * time.Second).
		SetRetryCount(2)
	return &TMDbAPI{APIKey: apiKey, Cache: cache, client: client}
}

type tmdbResult struct {
	ID            int    `json:"id"`
	Title         string `json:"title,omitempty"`
	Name          string `json:"name,omitempty"`
	OriginalTitle string `json:"original_title,omitempty"`
	OriginalName  string `json:"original_name,omitempty"`
	ReleaseDate   string `json:"release_date,omitempty"`
	FirstAirDate  string `json:"first_air_date,omitempty"`
}

type tmdbSearchResults struct {
	Results []tmdbResult `json:"results"`
}

func (r tmdbResult) year() int {
	date := Coalesce(r.ReleaseDate, r.FirstAirDate)
	if len(date) < 4 {
		return 0
	}
	year, _ := strconv.Atoi(date[:4])
	return year
}

func (api *TMDbAPI) Search(title string, year int, kind MediaKind) ([]Candidate, error) {
	cacheKey := fmt.Sprintf("%s|%s|%d", kind, strings.ToLower(title), year)
	if candidates, ok := api.Cache.get(cacheKey, 24*time.Hour); ok {
		Log("🔄 using cached results for", title)
		return candidates, nil
	}

	endpoint := "/search/movie"
	yearParam := "primary_release_year"
	if kind == Episode {
		endpoint = "/search/tv"
		yearParam = "first_air_date_year"
	}

	request := api.client.R().
		SetQueryParam("api_key", api.APIKey).
		SetQueryParam("query", title).
		SetQueryParam("include_adult", "true").
		SetResult(&tmdbSearchResults{})
	if year != 0 {
		request.SetQueryParam(yearParam, strconv.Itoa(year))
	}

	Log("fetching tmdb", endpoint, title)
	response, err := request.Get(endpoint)
	if err != nil {
		return nil, err
	}
	if response.IsError() {
		return nil, fmt.Errorf("tmdb search %s failed with status %d", endpoint, response.StatusCode())
	}

	searchResults := response.Result().(*tmdbSearchResults)
	candidates := mapSlice(searchResults.Results, func(result tmdbResult) Candidate {
		displayName := Coalesce(result.Name, result.Title)
		original := Coalesce(result.OriginalName, result.OriginalTitle)
		var alternates []string
		if original != "" && original != displayName {
			alternates = append(alternates, original)
		}
		return Candidate{
			ID:              strconv.Itoa(result.ID),
			DisplayName:     displayName,
			Year:            result.year(),
			AlternateTitles: alternates,
		}
	})
	candidates = filterSlice(candidates, func(c Candidate) bool { return c.DisplayName != "" })

	api.Cache.put(cacheKey, candidates)
	return candidates, nil
}
