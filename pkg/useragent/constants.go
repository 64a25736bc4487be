package useragent

// Unknown is reported for any component that could not be detected.
const Unknown = ""

// Device types represent the category of device that made the request
const (
	// DeviceTypeBot identifies automated crawlers, bots, and spiders
	DeviceTypeBot = "bot"

	// DeviceTypeMobile identifies smartphones and feature phones
	DeviceTypeMobile = "mobile"

	// DeviceTypeTablet identifies tablet devices (iPad, Android tablets, etc.)
	DeviceTypeTablet = "tablet"

	// DeviceTypeDesktop identifies desktop computers and laptops
	DeviceTypeDesktop = "desktop"

	// DeviceTypeTV identifies smart TVs and streaming devices
	DeviceTypeTV = "tv"

	// DeviceTypeConsole identifies gaming consoles
	DeviceTypeConsole = "console"
)

// Device brands
const (
	BrandApple     = "Apple"
	BrandSamsung   = "Samsung"
	BrandHuawei    = "Huawei"
	BrandXiaomi    = "Xiaomi"
	BrandOppo      = "OPPO"
	BrandVivo      = "vivo"
	BrandAmazon    = "Amazon"
	BrandMicrosoft = "Microsoft"
	BrandSony      = "Sony"
	BrandNintendo  = "Nintendo"
)

// Device models that cannot be read from the UA token itself
const (
	ModelIPhone         = "iPhone"
	ModelIPad           = "iPad"
	ModelIPod           = "iPod"
	ModelKindleFire     = "Kindle Fire"
	ModelSurface        = "Surface"
	ModelPlayStation    = "PlayStation"
	ModelXbox           = "Xbox"
	ModelNintendoSwitch = "Switch"
)

// Browser names
const (
	BrowserChrome   = "Chrome"
	BrowserFirefox  = "Firefox"
	BrowserSafari   = "Safari"
	BrowserEdge     = "Edge"
	BrowserOpera    = "Opera"
	BrowserIE       = "Internet Explorer"
	BrowserSamsung  = "Samsung Browser"
	BrowserUC       = "UC Browser"
	BrowserQQ       = "QQ Browser"
	BrowserHuawei   = "Huawei Browser"
	BrowserVivo     = "Vivo Browser"
	BrowserMIUI     = "MIUI Browser"
	BrowserBrave    = "Brave"
	BrowserVivaldi  = "Vivaldi"
	BrowserYandex   = "Yandex Browser"
	BrowserSilk     = "Amazon Silk"
	BrowserIEMobile = "IE Mobile"
)

// Rendering engines
const (
	EngineBlink    = "Blink"
	EngineWebKit   = "WebKit"
	EngineGecko    = "Gecko"
	EngineTrident  = "Trident"
	EngineEdgeHTML = "EdgeHTML"
	EnginePresto   = "Presto"
)

// Operating system names
const (
	OSWindows      = "Windows"
	OSWindowsPhone = "Windows Phone"
	OSMacOS        = "Mac OS X"
	OSiOS          = "iOS"
	OSAndroid      = "Android"
	OSLinux        = "Linux"
	OSChromeOS     = "Chrome OS"
	OSHarmonyOS    = "HarmonyOS"
	OSFireOS       = "Fire OS"
)

// Bot types
const (
	BotTypeCrawler     = "Crawler"
	BotTypeFeedFetcher = "Feed Fetcher"
	BotTypeSiteMonitor = "Site Monitor"
	BotTypeSocial      = "Social Media Agent"
	BotTypeValidator   = "Validator"
	BotTypeGeneric     = "Bot"
)
