package django

// Default returns Settings with every stock default resolved: scalar defaults
// assigned and mutable defaults filled in.
func Default() *Settings {
	s := baseSettings()
	s.FillDefaults()
	return s
}

// baseSettings carries only the scalar defaults; slice and map fields stay
// nil until FillDefaults runs.
func baseSettings() *Settings {
	return &Settings{
		Debug:        true,
		TimeZone:     "UTC",
		UseTZ:        true,
		LanguageCode: "en-us",
		UseI18N:      true,

		LanguageCookieName: "django_language",
		LanguageCookiePath: "/",

		DefaultCharset: "utf-8",
		ServerEmail:    "root@localhost",

		EmailBackend:       "django.core.mail.backends.smtp.EmailBackend",
		EmailHost:          "localhost",
		EmailPort:          25,
		DefaultFromEmail:   "webmaster@localhost",
		EmailSubjectPrefix: "[Django] ",

		FormRenderer: "django.forms.renderers.DjangoTemplates",

		AppendSlash: true,

		StaticURL: "static/",

		FileUploadMaxMemorySize:   2621440,
		DataUploadMaxMemorySize:   2621440,
		DataUploadMaxNumberFields: 1000,
		DataUploadMaxNumberFiles:  100,
		FileUploadPermissions:     0o644,

		DateFormat:          "N j, Y",
		DatetimeFormat:      "N j, Y, P",
		TimeFormat:          "P",
		YearMonthFormat:     "F Y",
		MonthDayFormat:      "F j",
		ShortDateFormat:     "m/d/Y",
		ShortDatetimeFormat: "m/d/Y P",
		DecimalSeparator:    ".",
		ThousandSeparator:   ",",

		DefaultAutoField: "django.db.models.BigAutoField",

		XFrameOptions: "DENY",

		SessionCacheAlias:     "default",
		SessionCookieName:     "sessionid",
		SessionCookieAge:      60 * 60 * 24 * 7 * 2,
		SessionCookiePath:     "/",
		SessionCookieHTTPOnly: true,
		SessionCookieSameSite: "Lax",
		SessionEngine:         "django.contrib.sessions.backends.db",
		SessionSerializer:     "django.contrib.sessions.serializers.JSONSerializer",

		CacheMiddlewareSeconds: 600,
		CacheMiddlewareAlias:   "default",

		AuthUserModel:        "auth.User",
		LoginURL:             "/accounts/login/",
		LoginRedirectURL:     "/accounts/profile/",
		PasswordResetTimeout: 60 * 60 * 24 * 3,

		SigningBackend: "django.core.signing.TimestampSigner",

		CSRFFailureView:    "django.views.csrf.csrf_failure",
		CSRFCookieName:     "csrftoken",
		CSRFCookieAge:      60 * 60 * 24 * 7 * 52,
		CSRFCookiePath:     "/",
		CSRFCookieSameSite: "Lax",
		CSRFHeaderName:     "HTTP_X_CSRFTOKEN",

		MessageStorage: "django.contrib.messages.storage.fallback.FallbackStorage",

		LoggingConfig:                  "logging.config.dictConfig",
		DefaultExceptionReporter:       "django.views.debug.ExceptionReporter",
		DefaultExceptionReporterFilter: "django.views.debug.SafeExceptionReporterFilter",

		TestRunner: "django.test.runner.DiscoverRunner",

		SecureContentTypeNosniff:      true,
		SecureCrossOriginOpenerPolicy: "same-origin",
		SecureReferrerPolicy:          "same-origin",
	}
}

// FillDefaults populates every slice and map field still at its zero value
// with its documented default. It is idempotent: fields already holding a
// value, including an explicitly assigned empty one, are left alone.
//
// Computed defaults run in a fixed order: Admins is filled before Managers,
// which defaults to the Admins value.
func (s *Settings) FillDefaults() {
	if s.Admins == nil {
		s.Admins = [][2]string{}
	}
	if s.InternalIPs == nil {
		s.InternalIPs = []string{}
	}
	if s.AllowedHosts == nil {
		s.AllowedHosts = []string{}
	}
	if s.Languages == nil {
		s.Languages = defaultLanguages()
	}
	if s.LanguagesBidi == nil {
		s.LanguagesBidi = []string{"he", "ar", "ar-dz", "ckb", "fa", "ug", "ur"}
	}
	if s.LocalePaths == nil {
		s.LocalePaths = []string{}
	}
	if s.Managers == nil {
		s.Managers = s.Admins
	}
	if s.Databases == nil {
		s.Databases = map[string]any{}
	}
	if s.DatabaseRouters == nil {
		s.DatabaseRouters = []string{}
	}
	if s.InstalledApps == nil {
		s.InstalledApps = defaultInstalledApps()
	}
	if s.Templates == nil {
		s.Templates = defaultTemplates()
	}
	if s.DisallowedUserAgents == nil {
		s.DisallowedUserAgents = []string{}
	}
	if s.AbsoluteURLOverrides == nil {
		s.AbsoluteURLOverrides = map[string]any{}
	}
	if s.Ignorable404URLs == nil {
		s.Ignorable404URLs = []string{}
	}
	if s.SecretKeyFallbacks == nil {
		s.SecretKeyFallbacks = []string{}
	}
	if s.Storages == nil {
		s.Storages = defaultStorages()
	}
	if s.FileUploadHandlers == nil {
		s.FileUploadHandlers = defaultFileUploadHandlers()
	}
	if s.DateInputFormats == nil {
		s.DateInputFormats = defaultDateInputFormats()
	}
	if s.TimeInputFormats == nil {
		s.TimeInputFormats = defaultTimeInputFormats()
	}
	if s.DatetimeInputFormats == nil {
		s.DatetimeInputFormats = defaultDatetimeInputFormats()
	}
	if s.Middleware == nil {
		s.Middleware = defaultMiddleware()
	}
	if s.Caches == nil {
		s.Caches = defaultCaches()
	}
	if s.AuthenticationBackends == nil {
		s.AuthenticationBackends = []string{"django.contrib.auth.backends.ModelBackend"}
	}
	if s.PasswordHashers == nil {
		s.PasswordHashers = defaultPasswordHashers()
	}
	if s.AuthPasswordValidators == nil {
		s.AuthPasswordValidators = defaultAuthPasswordValidators()
	}
	if s.CSRFTrustedOrigins == nil {
		s.CSRFTrustedOrigins = []string{}
	}
	if s.Logging == nil {
		s.Logging = map[string]any{}
	}
	if s.TestNonSerializedApps == nil {
		s.TestNonSerializedApps = []string{}
	}
	if s.FixtureDirs == nil {
		s.FixtureDirs = []string{}
	}
	if s.StaticfilesDirs == nil {
		s.StaticfilesDirs = []string{}
	}
	if s.StaticfilesFinders == nil {
		s.StaticfilesFinders = defaultStaticfilesFinders()
	}
	if s.MigrationModules == nil {
		s.MigrationModules = map[string]string{}
	}
	if s.SilencedSystemChecks == nil {
		s.SilencedSystemChecks = []string{}
	}
	if s.SecureRedirectExempt == nil {
		s.SecureRedirectExempt = []string{}
	}
}
