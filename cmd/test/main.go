package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type TestClient struct {
	baseURL string
	client  *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8000", "Base URL of the navigator server")
	testType := flag.String("test", "all", "Test type: all, health, diagnostics, generate, contacts, custom")
	name := flag.String("name", "", "Recipient name for message generation (for custom test)")
	company := flag.String("company", "", "Recipient company (for custom test)")
	tone := flag.String("tone", "professional", "Message tone (for custom test)")
	flag.Parse()

	client := NewTestClient(*baseURL)

	printHeader("Network Navigator - Smoke Tests")
	fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, *baseURL, colorReset)

	switch *testType {
	case "all":
		client.runAllTests()
	case "health":
		client.testHealthCheck()
	case "diagnostics":
		client.testDiagnostics()
	case "generate":
		client.testMessageGeneration()
	case "contacts":
		client.testContactRoundTrip()
	case "custom":
		if *name == "" {
			printError("Name is required for custom test. Use -name flag")
			os.Exit(1)
		}
		client.testCustomMessage(map[string]string{"name": *name, "company": *company, "tone": *tone})
	default:
		printError(fmt.Sprintf("Unknown test type: %s", *testType))
		fmt.Println("\nAvailable tests: all, health, diagnostics, generate, contacts, custom")
		os.Exit(1)
	}
}

func (tc *TestClient) runAllTests() {
	tests := []struct {
		name string
		fn   func() bool
	}{
		{"Health Check", tc.testHealthCheck},
		{"Diagnostics", tc.testDiagnostics},
		{"Message Generation", tc.testMessageGeneration},
		{"Contact Round Trip", tc.testContactRoundTrip},
	}

	passed := 0
	failed := 0

	for _, test := range tests {
		if test.fn() {
			passed++
		} else {
			failed++
		}
		fmt.Println()
	}

	printHeader("Test Summary")
	fmt.Printf("%sPassed: %d%s\n", colorGreen, passed, colorReset)
	fmt.Printf("%sFailed: %d%s\n", colorRed, failed, colorReset)
	fmt.Printf("Total: %d\n", passed+failed)

	if failed > 0 {
		os.Exit(1)
	}
}

// do sends a JSON request and returns the body when the status matches want.
func (tc *TestClient) do(method, path string, payload any, want int) ([]byte, bool) {
	url := tc.baseURL + path
	fmt.Printf("%s %s\n", method, url)

	var body io.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		printError(fmt.Sprintf("Bad request: %v", err))
		return nil, false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := tc.client.Do(req)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return nil, false
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != want {
		printError(fmt.Sprintf("Expected status %d, got %d", want, resp.StatusCode))
		fmt.Printf("Response: %s\n", string(data))
		return data, false
	}
	return data, true
}

func (tc *TestClient) testHealthCheck() bool {
	printTestHeader("Testing Health Check Endpoint")

	body, ok := tc.do(http.MethodGet, "/health", nil, http.StatusOK)
	if !ok {
		return false
	}

	if string(body) != "OK" {
		printError(fmt.Sprintf("Expected body 'OK', got '%s'", string(body)))
		return false
	}

	printSuccess("Health check passed")
	return true
}

func (tc *TestClient) testDiagnostics() bool {
	printTestHeader("Testing Diagnostics Endpoint")

	body, ok := tc.do(http.MethodGet, "/api/diagnostics", nil, http.StatusOK)
	if !ok {
		return false
	}

	var diagnostics map[string]interface{}
	if err := json.Unmarshal(body, &diagnostics); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}

	requiredFields := []string{"status", "generatorReady", "tones", "aiModel", "storePath"}
	for _, field := range requiredFields {
		if _, ok := diagnostics[field]; !ok {
			printError(fmt.Sprintf("Missing required field: %s", field))
			return false
		}
	}

	if ready, _ := diagnostics["generatorReady"].(bool); !ready {
		printError("Message generator is not ready")
		printJSON(body)
		return false
	}

	printSuccess("Diagnostics report a ready generator")
	printJSON(body)
	return true
}

func (tc *TestClient) testMessageGeneration() bool {
	return tc.testCustomMessage(map[string]string{
		"name":    "Dana",
		"role":    "Engineering Manager",
		"company": "Acme",
		"tone":    "friendly",
	})
}

func (tc *TestClient) testCustomMessage(request map[string]string) bool {
	printTestHeader("Testing Message Generation")

	jsonData, _ := json.MarshalIndent(request, "", "  ")
	fmt.Printf("%sRequest:%s\n", colorYellow, colorReset)
	fmt.Println(string(jsonData))
	fmt.Println()

	body, ok := tc.do(http.MethodPost, "/api/messages/generate", request, http.StatusOK)
	if !ok {
		return false
	}

	var result struct {
		Message   string `json:"message"`
		Source    string `json:"source"`
		Tone      string `json:"tone"`
		WordCount int    `json:"wordCount"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}

	greeting := fmt.Sprintf("Hi %s,", strings.TrimSpace(request["name"]))
	if !strings.HasPrefix(result.Message, greeting) {
		printError(fmt.Sprintf("Expected message to start with %q", greeting))
		return false
	}

	printSuccess(fmt.Sprintf("Message generated (%s, %s tone, %d words)", result.Source, result.Tone, result.WordCount))

	fmt.Printf("\n%sGenerated Message:%s\n", colorGreen, colorReset)
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println(result.Message)
	fmt.Println(strings.Repeat("=", 80))

	return true
}

func (tc *TestClient) testContactRoundTrip() bool {
	printTestHeader("Testing Contact Round Trip")

	name := fmt.Sprintf("Smoke Test %d", time.Now().Unix())
	body, ok := tc.do(http.MethodPost, "/api/contacts", map[string]interface{}{
		"name":        name,
		"company":     "Acme",
		"tags":        []string{"smoke-test"},
		"warmthLevel": "warm",
	}, http.StatusCreated)
	if !ok {
		return false
	}

	var contact struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &contact); err != nil || contact.ID == "" {
		printError("Created contact has no id")
		return false
	}
	printSuccess(fmt.Sprintf("Created %s (%s)", contact.Name, contact.ID))

	if _, ok := tc.do(http.MethodPost, "/api/contacts/"+contact.ID+"/interactions", map[string]string{
		"type":  "email",
		"notes": "Smoke test follow-up",
	}, http.StatusCreated); !ok {
		return false
	}
	printSuccess("Interaction logged")

	body, ok = tc.do(http.MethodGet, "/api/contacts/"+contact.ID, nil, http.StatusOK)
	if !ok {
		return false
	}
	var view struct {
		DaysSinceContact *int `json:"daysSinceContact"`
	}
	if err := json.Unmarshal(body, &view); err != nil || view.DaysSinceContact == nil {
		printError("Contact has no last contact date after logging an interaction")
		return false
	}
	printSuccess("Last contact date updated")

	if _, ok := tc.do(http.MethodDelete, "/api/contacts/"+contact.ID, nil, http.StatusNoContent); !ok {
		return false
	}
	printSuccess("Contact deleted")
	return true
}

func printHeader(text string) {
	fmt.Printf("\n%s%s%s\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
	fmt.Printf("%s= %s =%s\n", colorBlue, text, colorReset)
	fmt.Printf("%s%s%s\n\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
}

func printTestHeader(text string) {
	fmt.Printf("%s[TEST] %s%s\n", colorCyan, text, colorReset)
	fmt.Println(strings.Repeat("-", 80))
}

func printSuccess(text string) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, text, colorReset)
}

func printError(text string) {
	fmt.Printf("%s✗ %s%s\n", colorRed, text, colorReset)
}

func printJSON(data []byte) {
	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, data, "", "  "); err == nil {
		fmt.Printf("\n%sResponse:%s\n%s\n", colorYellow, colorReset, prettyJSON.String())
	}
}
