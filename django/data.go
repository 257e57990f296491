package django

// Default tables for the mutable settings. Each function returns a fresh
// value so callers can modify their copy freely.

func defaultLanguages() [][2]string {
	return [][2]string{
		{"af", "Afrikaans"}, {"ar", "Arabic"}, {"ar-dz", "Algerian Arabic"},
		{"ast", "Asturian"}, {"az", "Azerbaijani"}, {"bg", "Bulgarian"},
		{"be", "Belarusian"}, {"bn", "Bengali"}, {"br", "Breton"},
		{"bs", "Bosnian"}, {"ca", "Catalan"}, {"ckb", "Central Kurdish (Sorani)"},
		{"cs", "Czech"}, {"cy", "Welsh"}, {"da", "Danish"}, {"de", "German"},
		{"dsb", "Lower Sorbian"}, {"el", "Greek"}, {"en", "English"},
		{"en-au", "Australian English"}, {"en-gb", "British English"},
		{"eo", "Esperanto"}, {"es", "Spanish"}, {"es-ar", "Argentinian Spanish"},
		{"es-co", "Colombian Spanish"}, {"es-mx", "Mexican Spanish"},
		{"es-ni", "Nicaraguan Spanish"}, {"es-ve", "Venezuelan Spanish"},
		{"et", "Estonian"}, {"eu", "Basque"}, {"fa", "Persian"},
		{"fi", "Finnish"}, {"fr", "French"}, {"fy", "Frisian"},
		{"ga", "Irish"}, {"gd", "Scottish Gaelic"}, {"gl", "Galician"},
		{"he", "Hebrew"}, {"hi", "Hindi"}, {"hr", "Croatian"},
		{"hsb", "Upper Sorbian"}, {"hu", "Hungarian"}, {"hy", "Armenian"},
		{"ia", "Interlingua"}, {"id", "Indonesian"}, {"ig", "Igbo"},
		{"io", "Ido"}, {"is", "Icelandic"}, {"it", "Italian"},
		{"ja", "Japanese"}, {"ka", "Georgian"}, {"kab", "Kabyle"},
		{"kk", "Kazakh"}, {"km", "Khmer"}, {"kn", "Kannada"},
		{"ko", "Korean"}, {"ky", "Kyrgyz"}, {"lb", "Luxembourgish"},
		{"lt", "Lithuanian"}, {"lv", "Latvian"}, {"mk", "Macedonian"},
		{"ml", "Malayalam"}, {"mn", "Mongolian"}, {"mr", "Marathi"},
		{"ms", "Malay"}, {"my", "Burmese"}, {"nb", "Norwegian Bokmål"},
		{"ne", "Nepali"}, {"nl", "Dutch"}, {"nn", "Norwegian Nynorsk"},
		{"os", "Ossetic"}, {"pa", "Punjabi"}, {"pl", "Polish"},
		{"pt", "Portuguese"}, {"pt-br", "Brazilian Portuguese"},
		{"ro", "Romanian"}, {"ru", "Russian"}, {"sk", "Slovak"},
		{"sl", "Slovenian"}, {"sq", "Albanian"}, {"sr", "Serbian"},
		{"sr-latn", "Serbian Latin"}, {"sv", "Swedish"}, {"sw", "Swahili"},
		{"ta", "Tamil"}, {"te", "Telugu"}, {"tg", "Tajik"}, {"th", "Thai"},
		{"tk", "Turkmen"}, {"tr", "Turkish"}, {"tt", "Tatar"},
		{"udm", "Udmurt"}, {"ug", "Uyghur"}, {"uk", "Ukrainian"},
		{"ur", "Urdu"}, {"uz", "Uzbek"}, {"vi", "Vietnamese"},
		{"zh-hans", "Simplified Chinese"}, {"zh-hant", "Traditional Chinese"},
	}
}

func defaultInstalledApps() []string {
	return []string{
		"django.contrib.admin",
		"django.contrib.auth",
		"django.contrib.contenttypes",
		"django.contrib.sessions",
		"django.contrib.messages",
		"django.contrib.staticfiles",
	}
}

func defaultTemplates() []map[string]any {
	return []map[string]any{
		{
			"BACKEND":  "django.template.backends.django.DjangoTemplates",
			"DIRS":     []string{},
			"APP_DIRS": true,
			"OPTIONS": map[string]any{
				"context_processors": []string{
					"django.template.context_processors.request",
					"django.contrib.auth.context_processors.auth",
					"django.contrib.messages.context_processors.messages",
				},
			},
		},
	}
}

func defaultStorages() map[string]map[string]string {
	return map[string]map[string]string{
		"default":     {"BACKEND": "django.core.files.storage.FileSystemStorage"},
		"staticfiles": {"BACKEND": "django.contrib.staticfiles.storage.StaticFilesStorage"},
	}
}

func defaultFileUploadHandlers() []string {
	return []string{
		"django.core.files.uploadhandler.MemoryFileUploadHandler",
		"django.core.files.uploadhandler.TemporaryFileUploadHandler",
	}
}

func defaultDateInputFormats() []string {
	return []string{
		"%Y-%m-%d", "%m/%d/%Y", "%m/%d/%y", "%b %d %Y", "%b %d, %Y",
		"%d %b %Y", "%d %b, %Y", "%B %d %Y", "%B %d, %Y", "%d %B %Y", "%d %B, %Y",
	}
}

func defaultTimeInputFormats() []string {
	return []string{"%H:%M:%S", "%H:%M:%S.%f", "%H:%M"}
}

func defaultDatetimeInputFormats() []string {
	return []string{
		"%Y-%m-%d %H:%M:%S", "%Y-%m-%d %H:%M:%S.%f", "%Y-%m-%d %H:%M",
		"%m/%d/%Y %H:%M:%S", "%m/%d/%Y %H:%M:%S.%f", "%m/%d/%Y %H:%M",
		"%m/%d/%y %H:%M:%S", "%m/%d/%y %H:%M:%S.%f", "%m/%d/%y %H:%M",
	}
}

func defaultMiddleware() []string {
	return []string{
		"django.middleware.security.SecurityMiddleware",
		"django.contrib.sessions.middleware.SessionMiddleware",
		"django.middleware.common.CommonMiddleware",
		"django.middleware.csrf.CsrfViewMiddleware",
		"django.contrib.auth.middleware.AuthenticationMiddleware",
		"django.contrib.messages.middleware.MessageMiddleware",
		"django.middleware.clickjacking.XFrameOptionsMiddleware",
	}
}

func defaultCaches() map[string]map[string]string {
	return map[string]map[string]string{
		"default": {"BACKEND": "django.core.cache.backends.locmem.LocMemCache"},
	}
}

func defaultPasswordHashers() []string {
	return []string{
		"django.contrib.auth.hashers.PBKDF2PasswordHasher",
		"django.contrib.auth.hashers.PBKDF2SHA1PasswordHasher",
		"django.contrib.auth.hashers.Argon2PasswordHasher",
		"django.contrib.auth.hashers.BCryptSHA256PasswordHasher",
		"django.contrib.auth.hashers.ScryptPasswordHasher",
	}
}

func defaultAuthPasswordValidators() []map[string]string {
	return []map[string]string{
		{"NAME": "django.contrib.auth.password_validation.UserAttributeSimilarityValidator"},
		{"NAME": "django.contrib.auth.password_validation.MinimumLengthValidator"},
		{"NAME": "django.contrib.auth.password_validation.CommonPasswordValidator"},
		{"NAME": "django.contrib.auth.password_validation.NumericPasswordValidator"},
	}
}

func defaultStaticfilesFinders() []string {
	return []string{
		"django.contrib.staticfiles.finders.FileSystemFinder",
		"django.contrib.staticfiles.finders.AppDirectoriesFinder",
	}
}
