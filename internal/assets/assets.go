package assets

// PageTemplateName is the name of the page skeleton template.
const PageTemplateName = "page"

// SettingsFileName is the file name of the starter settings file.
const SettingsFileName = "text2blog_settings.json"
