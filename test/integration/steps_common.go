package integration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/gormbase/gormbase/pkg/envvar"
	"github.com/gormbase/gormbase/pkg/middleware"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc             *TestContext
	serverURL      string
	scenarioServer *ServerInstance
	response       *http.Response
	responseBody   []byte
	authToken      string
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:        tc,
		serverURL: tc.ServerURL,
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Background steps
	sc.Step(`^a gormbase server is running$`, s.aServerIsRunning)
	sc.Step(`^no variables exist$`, s.noVariablesExist)
	sc.Step(`^I am authenticated as "([^"]*)"$`, s.iAmAuthenticatedAs)
	sc.Step(`^I am not authenticated$`, s.iAmNotAuthenticated)

	// Variable steps
	sc.Step(`^the variable "([^"]*)" is set to (.+)$`, s.theVariableIsSetTo)
	sc.Step(`^I store the value (.+) in variable "([^"]*)"$`, s.iStoreValueInVariable)
	sc.Step(`^I fetch the variable "([^"]*)"$`, s.iFetchVariable)
	sc.Step(`^I list the variables$`, s.iListVariables)
	sc.Step(`^I unset the variable "([^"]*)"$`, s.iUnsetVariable)
	sc.Step(`^the variable "([^"]*)" should have value (.+)$`, s.theVariableShouldHaveValue)
	sc.Step(`^the variable "([^"]*)" should not exist$`, s.theVariableShouldNotExist)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response should contain variable "([^"]*)" with value (.+)$`, s.theResponseShouldContainVariableWithValue)
	sc.Step(`^the response should list (\d+) variables$`, s.theResponseShouldListVariables)
	sc.Step(`^the response should include variable "([^"]*)"$`, s.theResponseShouldIncludeVariable)

	// Extension steps
	sc.Step(`^the PostgreSQL extension "([^"]*)" should be installed$`, s.thePostgreSQLExtensionShouldBeInstalled)

	s.registerAutocompleteSteps(sc)

	// Scenario-scoped servers are torn down after each scenario
	sc.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		s.stopScenarioServer()
		return ctx, nil
	})
}

// doRequest performs an HTTP request against the current server, attaching
// the bearer token when one is held.
func (s *StepsContext) doRequest(method, path string, body io.Reader) error {
	req, err := http.NewRequest(method, s.serverURL+path, body)
	if err != nil {
		return err
	}
	if s.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.authToken)
	}

	s.response, err = s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}

	s.responseBody, err = io.ReadAll(s.response.Body)
	_ = s.response.Body.Close()
	return err
}

// Background steps

func (s *StepsContext) aServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) noVariablesExist() error {
	return s.tc.DB.Exec(`DELETE FROM env_vars`).Error
}

func (s *StepsContext) iAmAuthenticatedAs(subject string) error {
	token, err := middleware.IssueToken(s.tc.JWTSecret, subject, time.Hour)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}
	s.authToken = token
	return nil
}

func (s *StepsContext) iAmNotAuthenticated() error {
	s.authToken = ""
	return nil
}

// Variable steps

func (s *StepsContext) theVariableIsSetTo(key, rawValue string) error {
	var value interface{}
	if err := json.Unmarshal([]byte(rawValue), &value); err != nil {
		return fmt.Errorf("step value %q is not valid JSON: %w", rawValue, err)
	}

	store := envvar.NewGormStore(s.tc.DB)
	_, err := store.Set(context.Background(), key, value)
	return err
}

func (s *StepsContext) iStoreValueInVariable(rawValue, key string) error {
	return s.doRequest("POST", "/variables/"+key, strings.NewReader(rawValue))
}

func (s *StepsContext) iFetchVariable(key string) error {
	return s.doRequest("GET", "/variables/"+key, nil)
}

func (s *StepsContext) iListVariables() error {
	return s.doRequest("GET", "/variables", nil)
}

func (s *StepsContext) iUnsetVariable(key string) error {
	return s.doRequest("DELETE", "/variables/"+key, nil)
}

func (s *StepsContext) theVariableShouldHaveValue(key, rawValue string) error {
	store := envvar.NewGormStore(s.tc.DB)
	v, err := store.Get(context.Background(), key)
	if err != nil {
		return err
	}
	return jsonEqual(rawValue, string(v.Value))
}

func (s *StepsContext) theVariableShouldNotExist(key string) error {
	store := envvar.NewGormStore(s.tc.DB)
	_, err := store.Get(context.Background(), key)
	if errors.Is(err, envvar.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return fmt.Errorf("variable %s should not exist but does", key)
}

// Response steps

func (s *StepsContext) theResponseStatusShouldBe(expectedStatus int) error {
	if s.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d: %s", expectedStatus, s.response.StatusCode, string(s.responseBody))
	}
	return nil
}

func (s *StepsContext) theResponseShouldContainVariableWithValue(key, rawValue string) error {
	var v struct {
		Key   string          `json:"key"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(s.responseBody, &v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if v.Key != key {
		return fmt.Errorf("expected key %q, got %q", key, v.Key)
	}
	return jsonEqual(rawValue, string(v.Value))
}

func (s *StepsContext) theResponseShouldListVariables(expectedCount int) error {
	vars, err := s.parseVariableList()
	if err != nil {
		return err
	}
	if len(vars) != expectedCount {
		return fmt.Errorf("expected %d variables, got %d", expectedCount, len(vars))
	}
	return nil
}

func (s *StepsContext) theResponseShouldIncludeVariable(key string) error {
	vars, err := s.parseVariableList()
	if err != nil {
		return err
	}
	for _, v := range vars {
		if v.Key == key {
			return nil
		}
	}
	return fmt.Errorf("variable %s not found in response", key)
}

func (s *StepsContext) parseVariableList() ([]struct {
	Key string `json:"key"`
}, error) {
	var vars []struct {
		Key string `json:"key"`
	}
	if err := json.Unmarshal(s.responseBody, &vars); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return vars, nil
}

// Extension steps

func (s *StepsContext) thePostgreSQLExtensionShouldBeInstalled(name string) error {
	var count int64
	if err := s.tc.DB.Raw(`SELECT COUNT(*) FROM pg_extension WHERE extname = ?`, name).Scan(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("extension %s is not installed", name)
	}
	return nil
}

// jsonEqual compares two JSON documents by value
func jsonEqual(expected, actual string) error {
	var want, got interface{}
	if err := json.Unmarshal([]byte(expected), &want); err != nil {
		return fmt.Errorf("expected value %q is not valid JSON: %w", expected, err)
	}
	if err := json.Unmarshal([]byte(actual), &got); err != nil {
		return fmt.Errorf("actual value %q is not valid JSON: %w", actual, err)
	}
	if !reflect.DeepEqual(want, got) {
		return fmt.Errorf("expected value %s, got %s", expected, actual)
	}
	return nil
}
