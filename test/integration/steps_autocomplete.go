package integration

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/cucumber/godog"

	"github.com/gormbase/gormbase/pkg/autocomplete"
)

// registerAutocompleteSteps registers the search step definitions
func (s *StepsContext) registerAutocompleteSteps(sc *godog.ScenarioContext) {
	// Scenario-scoped servers with non-default search settings
	sc.Step(`^a server configured for "([^"]*)" matching$`, s.aServerConfiguredForMatching)
	sc.Step(`^a server with page limit (\d+)$`, s.aServerWithPageLimit)
	sc.Step(`^a server requiring search input$`, s.aServerRequiringSearchInput)

	// Search steps
	sc.Step(`^I search variables for "([^"]*)"$`, s.iSearchVariablesFor)
	sc.Step(`^I search variables for "([^"]*)" on page (\d+)$`, s.iSearchVariablesForOnPage)

	// Result steps
	sc.Step(`^the search should return (\d+) results?$`, s.theSearchShouldReturnResults)
	sc.Step(`^the results should be empty$`, s.theResultsShouldBeEmpty)
	sc.Step(`^the results should include "([^"]*)"$`, s.theResultsShouldInclude)
	sc.Step(`^the results should not include "([^"]*)"$`, s.theResultsShouldNotInclude)
	sc.Step(`^there should be more results$`, s.thereShouldBeMoreResults)
	sc.Step(`^there should be no more results$`, s.thereShouldBeNoMoreResults)
}

// Scenario server steps

func (s *StepsContext) startScenarioServer(cfg ServerConfig) error {
	instance, err := StartServer(s.tc, cfg)
	if err != nil {
		return err
	}
	s.scenarioServer = instance
	s.serverURL = instance.ServerURL
	return nil
}

func (s *StepsContext) stopScenarioServer() {
	if s.scenarioServer == nil {
		return
	}
	s.scenarioServer.Stop()
	s.scenarioServer = nil
	s.serverURL = s.tc.ServerURL
}

func (s *StepsContext) aServerConfiguredForMatching(mode string) error {
	match, err := autocomplete.MatchString(mode)
	if err != nil {
		return err
	}

	cfg := DefaultServerConfig()
	cfg.Match = match
	return s.startScenarioServer(cfg)
}

func (s *StepsContext) aServerWithPageLimit(limit int) error {
	cfg := DefaultServerConfig()
	cfg.PageLimit = limit
	return s.startScenarioServer(cfg)
}

func (s *StepsContext) aServerRequiringSearchInput() error {
	cfg := DefaultServerConfig()
	cfg.MinInputLen = 1
	return s.startScenarioServer(cfg)
}

// Search steps

func (s *StepsContext) iSearchVariablesFor(query string) error {
	return s.doRequest("GET", "/autocomplete/variables?q="+url.QueryEscape(query), nil)
}

func (s *StepsContext) iSearchVariablesForOnPage(query string, page int) error {
	path := "/autocomplete/variables?q=" + url.QueryEscape(query) + "&page=" + strconv.Itoa(page)
	return s.doRequest("GET", path, nil)
}

// Result steps

func (s *StepsContext) parseSearchResponse() (*autocomplete.Response, error) {
	var resp autocomplete.Response
	if err := json.Unmarshal(s.responseBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}
	return &resp, nil
}

func (s *StepsContext) theSearchShouldReturnResults(expectedCount int) error {
	resp, err := s.parseSearchResponse()
	if err != nil {
		return err
	}
	if len(resp.Results) != expectedCount {
		return fmt.Errorf("expected %d results, got %d: %s", expectedCount, len(resp.Results), string(s.responseBody))
	}
	return nil
}

func (s *StepsContext) theResultsShouldBeEmpty() error {
	return s.theSearchShouldReturnResults(0)
}

func (s *StepsContext) theResultsShouldInclude(text string) error {
	resp, err := s.parseSearchResponse()
	if err != nil {
		return err
	}
	for _, result := range resp.Results {
		if result.Text == text {
			return nil
		}
	}
	return fmt.Errorf("result %q not found in %s", text, string(s.responseBody))
}

func (s *StepsContext) theResultsShouldNotInclude(text string) error {
	resp, err := s.parseSearchResponse()
	if err != nil {
		return err
	}
	for _, result := range resp.Results {
		if result.Text == text {
			return fmt.Errorf("result %q should not be present: %s", text, string(s.responseBody))
		}
	}
	return nil
}

func (s *StepsContext) thereShouldBeMoreResults() error {
	resp, err := s.parseSearchResponse()
	if err != nil {
		return err
	}
	if !resp.Pagination.More {
		return fmt.Errorf("expected more results to be available")
	}
	return nil
}

func (s *StepsContext) thereShouldBeNoMoreResults() error {
	resp, err := s.parseSearchResponse()
	if err != nil {
		return err
	}
	if resp.Pagination.More {
		return fmt.Errorf("expected no more results to be available")
	}
	return nil
}
