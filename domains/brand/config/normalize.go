package config

// Normalize merges a raw tenant document over the default template and
// returns the complete configuration. Pure function: the input document is
// not modified and no state is read beyond the template.
//
// Merge policy: identity, API, Firebase and auth fields are taken from the
// document when present, else from the template. Colors merge field by field
// over the default palette. Module records merge per module key — a key
// present in the document replaces the template record wholesale, an absent
// key keeps the template record (so chat stays disabled and everything else
// stays enabled unless the document says otherwise).
//
// Values are not validated; a malformed color or URL passes through as
// authored. Tenant documents are curated by developers, so schema problems
// are an authoring-time concern (see Validator), not a runtime one.
func Normalize(raw Document) Resolved {
	out := DefaultTemplate()

	if raw.ID != "" {
		out.ID = raw.ID
	}
	if raw.Name != "" {
		out.Name = raw.Name
	}
	if raw.ShortName != "" {
		out.ShortName = raw.ShortName
	}
	if raw.Tagline != "" {
		out.Tagline = raw.Tagline
	}

	if raw.API != nil {
		if raw.API.BaseURL != "" {
			out.API.BaseURL = raw.API.BaseURL
		}
		if raw.API.Database != "" {
			out.API.Database = raw.API.Database
		}
	}

	if raw.Firebase != nil {
		if raw.Firebase.ProjectID != "" {
			out.Firebase.ProjectID = raw.Firebase.ProjectID
		}
		if raw.Firebase.SenderID != "" {
			out.Firebase.SenderID = raw.Firebase.SenderID
		}
		if len(raw.Firebase.Topics) > 0 {
			out.Firebase.Topics = append([]string(nil), raw.Firebase.Topics...)
		}
	}

	if raw.Auth != nil {
		if raw.Auth.Type != "" {
			out.Auth.Mode = AuthModeFromString(raw.Auth.Type)
		}
		if raw.Auth.OTPLength != nil {
			out.Auth.OTPLength = *raw.Auth.OTPLength
		}
		if raw.Auth.CountryCode != "" {
			out.Auth.CountryCode = raw.Auth.CountryCode
		}
	}

	if raw.Theme != nil {
		out.Theme.Colors.merge(raw.Theme.Colors)
		if raw.Theme.Fonts != nil {
			if raw.Theme.Fonts.Regular != "" {
				out.Theme.Fonts.Regular = raw.Theme.Fonts.Regular
			}
			if raw.Theme.Fonts.Medium != "" {
				out.Theme.Fonts.Medium = raw.Theme.Fonts.Medium
			}
			if raw.Theme.Fonts.Bold != "" {
				out.Theme.Fonts.Bold = raw.Theme.Fonts.Bold
			}
		}
	}

	if raw.Features != nil {
		for key, record := range raw.Features.Modules {
			m, ok := ParseModule(key)
			if !ok {
				continue
			}
			out.Features.Modules[m] = ModuleConfig{
				Enabled:            record.Enabled,
				ShowPaymentGateway: record.ShowPaymentGateway,
			}
		}
		if raw.Features.Notifications != nil {
			out.Features.Notifications = *raw.Features.Notifications
		}
		if raw.Features.Offline != nil {
			out.Features.Offline = *raw.Features.Offline
		}
		if raw.Features.DarkMode != nil {
			out.Features.DarkMode = *raw.Features.DarkMode
		}
	}

	return out
}
