package django

import (
	"github.com/classconf/classconf"
)

// Settings declares every framework setting with its stock default value.
// Field names flatten to the original uppercase setting names via the yaml
// tags, so a flattened Settings carries keys like ALLOWED_HOSTS, USE_I18N and
// CSRF_COOKIE_NAME.
type Settings struct {
	classconf.Base `yaml:"-"`

	// Core
	Debug                    bool        `yaml:"debug"`
	DebugPropagateExceptions bool        `yaml:"debug_propagate_exceptions"`
	Admins                   [][2]string `yaml:"admins"`
	InternalIPs              []string    `yaml:"internal_ips"`
	AllowedHosts             []string    `yaml:"allowed_hosts"`
	TimeZone                 string      `yaml:"time_zone"`
	UseTZ                    bool        `yaml:"use_tz"`
	LanguageCode             string      `yaml:"language_code"`
	Languages                [][2]string `yaml:"languages"`
	LanguagesBidi            []string    `yaml:"languages_bidi"`
	UseI18N                  bool        `yaml:"use_i18n"`
	LocalePaths              []string    `yaml:"locale_paths"`

	// Language cookie
	LanguageCookieName     string `yaml:"language_cookie_name"`
	LanguageCookieAge      int    `yaml:"language_cookie_age"`
	LanguageCookieDomain   string `yaml:"language_cookie_domain"`
	LanguageCookiePath     string `yaml:"language_cookie_path"`
	LanguageCookieSecure   bool   `yaml:"language_cookie_secure"`
	LanguageCookieHTTPOnly bool   `yaml:"language_cookie_httponly"`
	LanguageCookieSameSite string `yaml:"language_cookie_samesite"`

	// Management
	Managers       [][2]string `yaml:"managers"`
	DefaultCharset string      `yaml:"default_charset"`
	ServerEmail    string      `yaml:"server_email"`

	// Database
	Databases       map[string]any `yaml:"databases"`
	DatabaseRouters []string       `yaml:"database_routers"`

	// Email
	EmailBackend       string `yaml:"email_backend"`
	EmailHost          string `yaml:"email_host"`
	EmailPort          int    `yaml:"email_port"`
	EmailUseLocaltime  bool   `yaml:"email_use_localtime"`
	EmailHostUser      string `yaml:"email_host_user"`
	EmailHostPassword  string `yaml:"email_host_password"`
	EmailUseTLS        bool   `yaml:"email_use_tls"`
	EmailUseSSL        bool   `yaml:"email_use_ssl"`
	EmailSSLCertfile   string `yaml:"email_ssl_certfile"`
	EmailSSLKeyfile    string `yaml:"email_ssl_keyfile"`
	EmailTimeout       int    `yaml:"email_timeout"`
	DefaultFromEmail   string `yaml:"default_from_email"`
	EmailSubjectPrefix string `yaml:"email_subject_prefix"`

	// Apps and templates
	InstalledApps            []string         `yaml:"installed_apps"`
	Templates                []map[string]any `yaml:"templates"`
	FormRenderer             string           `yaml:"form_renderer"`
	FormsURLFieldAssumeHTTPS bool             `yaml:"forms_urlfield_assume_https"`

	// URL configuration
	AppendSlash          bool           `yaml:"append_slash"`
	PrependWWW           bool           `yaml:"prepend_www"`
	ForceScriptName      string         `yaml:"force_script_name"`
	DisallowedUserAgents []string       `yaml:"disallowed_user_agents"`
	AbsoluteURLOverrides map[string]any `yaml:"absolute_url_overrides"`
	Ignorable404URLs     []string       `yaml:"ignorable_404_urls"`

	// Security
	SecretKey          string   `yaml:"secret_key"`
	SecretKeyFallbacks []string `yaml:"secret_key_fallbacks"`

	// Storage
	Storages   map[string]map[string]string `yaml:"storages"`
	MediaRoot  string                       `yaml:"media_root"`
	MediaURL   string                       `yaml:"media_url"`
	StaticRoot string                       `yaml:"static_root"`
	StaticURL  string                       `yaml:"static_url"`

	// File uploads
	FileUploadHandlers             []string `yaml:"file_upload_handlers"`
	FileUploadMaxMemorySize        int      `yaml:"file_upload_max_memory_size"`
	DataUploadMaxMemorySize        int      `yaml:"data_upload_max_memory_size"`
	DataUploadMaxNumberFields      int      `yaml:"data_upload_max_number_fields"`
	DataUploadMaxNumberFiles       int      `yaml:"data_upload_max_number_files"`
	FileUploadTempDir              string   `yaml:"file_upload_temp_dir"`
	FileUploadPermissions          int      `yaml:"file_upload_permissions"`
	FileUploadDirectoryPermissions int      `yaml:"file_upload_directory_permissions"`

	// Formatting
	FormatModulePath     string   `yaml:"format_module_path"`
	DateFormat           string   `yaml:"date_format"`
	DatetimeFormat       string   `yaml:"datetime_format"`
	TimeFormat           string   `yaml:"time_format"`
	YearMonthFormat      string   `yaml:"year_month_format"`
	MonthDayFormat       string   `yaml:"month_day_format"`
	ShortDateFormat      string   `yaml:"short_date_format"`
	ShortDatetimeFormat  string   `yaml:"short_datetime_format"`
	DateInputFormats     []string `yaml:"date_input_formats"`
	TimeInputFormats     []string `yaml:"time_input_formats"`
	DatetimeInputFormats []string `yaml:"datetime_input_formats"`
	FirstDayOfWeek       int      `yaml:"first_day_of_week"`
	DecimalSeparator     string   `yaml:"decimal_separator"`
	UseThousandSeparator bool     `yaml:"use_thousand_separator"`
	NumberGrouping       int      `yaml:"number_grouping"`
	ThousandSeparator    string   `yaml:"thousand_separator"`

	// Database tablespaces
	DefaultTablespace      string `yaml:"default_tablespace"`
	DefaultIndexTablespace string `yaml:"default_index_tablespace"`
	DefaultAutoField       string `yaml:"default_auto_field"`

	// Security headers
	XFrameOptions        string    `yaml:"x_frame_options"`
	UseXForwardedHost    bool      `yaml:"use_x_forwarded_host"`
	UseXForwardedPort    bool      `yaml:"use_x_forwarded_port"`
	WSGIApplication      string    `yaml:"wsgi_application"`
	SecureProxySSLHeader [2]string `yaml:"secure_proxy_ssl_header"`

	// Middleware
	Middleware []string `yaml:"middleware"`

	// Sessions
	SessionCacheAlias           string `yaml:"session_cache_alias"`
	SessionCookieName           string `yaml:"session_cookie_name"`
	SessionCookieAge            int    `yaml:"session_cookie_age"`
	SessionCookieDomain         string `yaml:"session_cookie_domain"`
	SessionCookieSecure         bool   `yaml:"session_cookie_secure"`
	SessionCookiePath           string `yaml:"session_cookie_path"`
	SessionCookieHTTPOnly       bool   `yaml:"session_cookie_httponly"`
	SessionCookieSameSite       string `yaml:"session_cookie_samesite"`
	SessionSaveEveryRequest     bool   `yaml:"session_save_every_request"`
	SessionExpireAtBrowserClose bool   `yaml:"session_expire_at_browser_close"`
	SessionEngine               string `yaml:"session_engine"`
	SessionFilePath             string `yaml:"session_file_path"`
	SessionSerializer           string `yaml:"session_serializer"`

	// Cache
	Caches                   map[string]map[string]string `yaml:"caches"`
	CacheMiddlewareKeyPrefix string                       `yaml:"cache_middleware_key_prefix"`
	CacheMiddlewareSeconds   int                          `yaml:"cache_middleware_seconds"`
	CacheMiddlewareAlias     string                       `yaml:"cache_middleware_alias"`

	// Authentication
	AuthUserModel          string              `yaml:"auth_user_model"`
	AuthenticationBackends []string            `yaml:"authentication_backends"`
	LoginURL               string              `yaml:"login_url"`
	LoginRedirectURL       string              `yaml:"login_redirect_url"`
	LogoutRedirectURL      string              `yaml:"logout_redirect_url"`
	PasswordResetTimeout   int                 `yaml:"password_reset_timeout"`
	PasswordHashers        []string            `yaml:"password_hashers"`
	AuthPasswordValidators []map[string]string `yaml:"auth_password_validators"`

	// Signing
	SigningBackend string `yaml:"signing_backend"`

	// CSRF
	CSRFFailureView    string   `yaml:"csrf_failure_view"`
	CSRFCookieName     string   `yaml:"csrf_cookie_name"`
	CSRFCookieAge      int      `yaml:"csrf_cookie_age"`
	CSRFCookieDomain   string   `yaml:"csrf_cookie_domain"`
	CSRFCookiePath     string   `yaml:"csrf_cookie_path"`
	CSRFCookieSecure   bool     `yaml:"csrf_cookie_secure"`
	CSRFCookieHTTPOnly bool     `yaml:"csrf_cookie_httponly"`
	CSRFCookieSameSite string   `yaml:"csrf_cookie_samesite"`
	CSRFHeaderName     string   `yaml:"csrf_header_name"`
	CSRFTrustedOrigins []string `yaml:"csrf_trusted_origins"`
	CSRFUseSessions    bool     `yaml:"csrf_use_sessions"`

	// Messages
	MessageStorage string `yaml:"message_storage"`

	// Logging
	LoggingConfig                  string         `yaml:"logging_config"`
	Logging                        map[string]any `yaml:"logging"`
	DefaultExceptionReporter       string         `yaml:"default_exception_reporter"`
	DefaultExceptionReporterFilter string         `yaml:"default_exception_reporter_filter"`

	// Testing
	TestRunner            string   `yaml:"test_runner"`
	TestNonSerializedApps []string `yaml:"test_non_serialized_apps"`

	// Fixtures
	FixtureDirs []string `yaml:"fixture_dirs"`

	// Static files
	StaticfilesDirs    []string `yaml:"staticfiles_dirs"`
	StaticfilesFinders []string `yaml:"staticfiles_finders"`

	// Migrations
	MigrationModules map[string]string `yaml:"migration_modules"`

	// System checks
	SilencedSystemChecks []string `yaml:"silenced_system_checks"`

	// Security middleware
	SecureContentTypeNosniff      bool     `yaml:"secure_content_type_nosniff"`
	SecureCrossOriginOpenerPolicy string   `yaml:"secure_cross_origin_opener_policy"`
	SecureHSTSIncludeSubdomains   bool     `yaml:"secure_hsts_include_subdomains"`
	SecureHSTSPreload             bool     `yaml:"secure_hsts_preload"`
	SecureHSTSSeconds             int      `yaml:"secure_hsts_seconds"`
	SecureRedirectExempt          []string `yaml:"secure_redirect_exempt"`
	SecureReferrerPolicy          string   `yaml:"secure_referrer_policy"`
	SecureSSLHost                 string   `yaml:"secure_ssl_host"`
	SecureSSLRedirect             bool     `yaml:"secure_ssl_redirect"`

	// Extra holds ad hoc user settings. Its entries are merged into the
	// flattened mapping at the top level, after every declared field, so
	// they win key collisions.
	Extra map[string]any `yaml:"extra"`
}
