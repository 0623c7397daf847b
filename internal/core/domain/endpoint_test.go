//go:build unit

package domain

import "testing"

// TestEndpoint_EffectiveLocation_PrefersResponseLocation verifies the
// response location wins over the location when both are set.
func TestEndpoint_EffectiveLocation_PrefersResponseLocation(t *testing.T) {
	e := Endpoint{Location: "https://sp/acs", ResponseLocation: "https://sp/acs-response"}
	if got := e.EffectiveLocation(); got != "https://sp/acs-response" {
		t.Errorf("EffectiveLocation() = %q, want response location", got)
	}
}

// TestEndpoint_EffectiveLocation_FallsBackToLocation verifies the location
// is used when no response location is set.
func TestEndpoint_EffectiveLocation_FallsBackToLocation(t *testing.T) {
	e := Endpoint{Location: "https://sp/acs"}
	if got := e.EffectiveLocation(); got != "https://sp/acs" {
		t.Errorf("EffectiveLocation() = %q, want location", got)
	}
}

// TestEndpoint_Validate_Usable verifies a well-formed endpoint validates.
func TestEndpoint_Validate_Usable(t *testing.T) {
	e := Endpoint{Binding: BindingHTTPPost, Location: "https://sp/acs"}
	if err := e.Validate(); err != nil {
		t.Errorf("Validate() should accept usable endpoint, got %v", err)
	}
}

// TestEndpoint_Validate_MissingBinding verifies a blank binding fails with
// an endpoint resolution error.
func TestEndpoint_Validate_MissingBinding(t *testing.T) {
	e := Endpoint{Binding: "  ", Location: "https://sp/acs"}
	err := e.Validate()
	if err == nil {
		t.Fatal("Validate() should reject blank binding")
	}
	if !IsCode(err, ErrCodeEndpointResolution) {
		t.Errorf("Validate() error code = %v, want endpoint_resolution", err)
	}
}

// TestEndpoint_Validate_MissingLocation verifies an endpoint without any
// location fails with an endpoint resolution error.
func TestEndpoint_Validate_MissingLocation(t *testing.T) {
	e := Endpoint{Binding: BindingHTTPPost}
	err := e.Validate()
	if err == nil {
		t.Fatal("Validate() should reject missing location")
	}
	if !IsCode(err, ErrCodeEndpointResolution) {
		t.Errorf("Validate() error code = %v, want endpoint_resolution", err)
	}
}

// TestEndpoint_Validate_ResponseLocationOnly verifies an endpoint with only
// a response location is usable.
func TestEndpoint_Validate_ResponseLocationOnly(t *testing.T) {
	e := Endpoint{Binding: BindingHTTPPost, ResponseLocation: "https://sp/acs"}
	if err := e.Validate(); err != nil {
		t.Errorf("Validate() should accept response-location-only endpoint, got %v", err)
	}
}

// TestEndpointFromRequestURL verifies the synthesized endpoint uses the URL
// for both locations and the requested binding.
func TestEndpointFromRequestURL(t *testing.T) {
	e := EndpointFromRequestURL("https://sp/override", BindingHTTPPost)
	if e.Binding != BindingHTTPPost {
		t.Errorf("Binding = %q, want %q", e.Binding, BindingHTTPPost)
	}
	if e.Location != "https://sp/override" || e.ResponseLocation != "https://sp/override" {
		t.Errorf("locations = (%q, %q), want the request URL for both", e.Location, e.ResponseLocation)
	}
}
