package ui

import "github.com/kannangrocery/storefront/internal/model"

// Localization manages UI text translations
type Localization struct {
	currentLanguage model.Language
	texts           map[model.Language]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyTagline            = "tagline"
	KeyLoginWelcome       = "login_welcome"
	KeyLoginNameHint      = "login_name_hint"
	KeyShopNow            = "shop_now"
	KeyAllCategories      = "all_categories"
	KeyAddToCart          = "add_to_cart"
	KeyAddedToCart        = "added_to_cart"
	KeyBack               = "back"
	KeyYourCart           = "your_cart"
	KeyCartEmpty          = "cart_empty"
	KeyBrowseProducts     = "browse_products"
	KeySubtotal           = "subtotal"
	KeyBulkDiscount       = "bulk_discount"
	KeyShipping           = "shipping"
	KeyTotalAmount        = "total_amount"
	KeyProceedToCheckout  = "proceed_to_checkout"
	KeyRemove             = "remove"
	KeyDiscountNudgeSmall = "discount_nudge_small"
	KeyDiscountNudgeLarge = "discount_nudge_large"
	KeyCheckout           = "checkout"
	KeyDeliveryDetails    = "delivery_details"
	KeyFullName           = "full_name"
	KeyAddress            = "address"
	KeyCity               = "city"
	KeyPincode            = "pincode"
	KeyPhone              = "phone"
	KeyPaymentMethod      = "payment_method"
	KeyPayCard            = "pay_card"
	KeyPayUPI             = "pay_upi"
	KeyPayCOD             = "pay_cod"
	KeyPlaceOrder         = "place_order"
	KeyBackToCart         = "back_to_cart"
	KeyProcessingPayment  = "processing_payment"
	KeyFillAllFields      = "fill_all_fields"
	KeyOrderConfirmed     = "order_confirmed"
	KeyOrderThanks        = "order_thanks"
	KeyOrderNumber        = "order_number"
	KeyContinueShopping   = "continue_shopping"
	KeySuggestionsTitle   = "suggestions_title"
	KeyMyOrders           = "my_orders"
	KeyNoOrders           = "no_orders"
	KeyItems              = "items"
	KeySettings           = "settings"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyLanguage           = "language"
	KeySettingsSaved      = "settings_saved"
	KeyAPIEndpoint        = "api_endpoint"
	KeyAPIKey             = "api_key"
	KeyModelName          = "model_name"
	KeyClose              = "close"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: model.LanguageEnglish,
		texts:           make(map[model.Language]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang model.Language) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[model.LanguageEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language
func (l *Localization) GetCurrentLanguage() model.Language {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[model.Language]string {
	return map[model.Language]string{
		model.LanguageEnglish: "English",
		model.LanguageTamil:   "தமிழ்",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts[model.LanguageEnglish] = map[string]string{
		KeyAppTitle:           "Kannan Stores",
		KeyTagline:            "Fresh groceries, Tamil Nadu style",
		KeyLoginWelcome:       "Welcome back!",
		KeyLoginNameHint:      "Your name",
		KeyShopNow:            "Shop Now",
		KeyAllCategories:      "All",
		KeyAddToCart:          "Add to Cart",
		KeyAddedToCart:        "Added to cart",
		KeyBack:               "Back",
		KeyYourCart:           "Your Cart",
		KeyCartEmpty:          "Your cart is empty",
		KeyBrowseProducts:     "Browse Products",
		KeySubtotal:           "Subtotal",
		KeyBulkDiscount:       "Bulk Discount",
		KeyShipping:           "Shipping",
		KeyTotalAmount:        "Total Amount",
		KeyProceedToCheckout:  "Proceed to Checkout",
		KeyRemove:             "Remove",
		KeyDiscountNudgeSmall: "Add %d more item(s) to unlock a 5%% discount!",
		KeyDiscountNudgeLarge: "Add %d more item(s) to unlock a 10%% discount!",
		KeyCheckout:           "Checkout",
		KeyDeliveryDetails:    "Delivery Details",
		KeyFullName:           "Full Name",
		KeyAddress:            "Address",
		KeyCity:               "City",
		KeyPincode:            "Pincode",
		KeyPhone:              "Phone Number",
		KeyPaymentMethod:      "Payment Method",
		KeyPayCard:            "Credit / Debit Card",
		KeyPayUPI:             "UPI",
		KeyPayCOD:             "Cash on Delivery",
		KeyPlaceOrder:         "Place Order",
		KeyBackToCart:         "Back to Cart",
		KeyProcessingPayment:  "Processing payment...",
		KeyFillAllFields:      "Please fill in all delivery details",
		KeyOrderConfirmed:     "Order Confirmed!",
		KeyOrderThanks:        "Thank you for shopping with us. Your groceries are on the way.",
		KeyOrderNumber:        "Order ID",
		KeyContinueShopping:   "Continue Shopping",
		KeySuggestionsTitle:   "You may also like",
		KeyMyOrders:           "My Orders",
		KeyNoOrders:           "No orders yet",
		KeyItems:              "items",
		KeySettings:           "Settings",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyLanguage:           "Language",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyAPIEndpoint:        "Suggestions API Endpoint",
		KeyAPIKey:             "Suggestions API Key",
		KeyModelName:          "Suggestions Model",
		KeyClose:              "Close",
	}

	// Tamil texts
	l.texts[model.LanguageTamil] = map[string]string{
		KeyAppTitle:           "கண்ணன் ஸ்டோர்ஸ்",
		KeyTagline:            "புத்தம் புதிய மளிகை, தமிழ்நாடு பாணியில்",
		KeyLoginWelcome:       "மீண்டும் வரவேற்கிறோம்!",
		KeyLoginNameHint:      "உங்கள் பெயர்",
		KeyShopNow:            "இப்போது வாங்குங்கள்",
		KeyAllCategories:      "அனைத்தும்",
		KeyAddToCart:          "கூடையில் சேர்",
		KeyAddedToCart:        "கூடையில் சேர்க்கப்பட்டது",
		KeyBack:               "பின்",
		KeyYourCart:           "உங்கள் கூடை",
		KeyCartEmpty:          "உங்கள் கூடை காலியாக உள்ளது",
		KeyBrowseProducts:     "பொருட்களைப் பாருங்கள்",
		KeySubtotal:           "கூட்டுத்தொகை",
		KeyBulkDiscount:       "மொத்த தள்ளுபடி",
		KeyShipping:           "டெலிவரி கட்டணம்",
		KeyTotalAmount:        "மொத்தத் தொகை",
		KeyProceedToCheckout:  "பணம் செலுத்த",
		KeyRemove:             "நீக்கு",
		KeyDiscountNudgeSmall: "இன்னும் %d பொருள் சேர்த்தால் 5%% தள்ளுபடி!",
		KeyDiscountNudgeLarge: "இன்னும் %d பொருள் சேர்த்தால் 10%% தள்ளுபடி!",
		KeyCheckout:           "பணம் செலுத்துதல்",
		KeyDeliveryDetails:    "டெலிவரி விவரங்கள்",
		KeyFullName:           "முழுப் பெயர்",
		KeyAddress:            "முகவரி",
		KeyCity:               "நகரம்",
		KeyPincode:            "அஞ்சல் குறியீடு",
		KeyPhone:              "தொலைபேசி எண்",
		KeyPaymentMethod:      "பணம் செலுத்தும் முறை",
		KeyPayCard:            "கிரெடிட் / டெபிட் கார்டு",
		KeyPayUPI:             "யூபிஐ",
		KeyPayCOD:             "பணம் நேரில் செலுத்துதல்",
		KeyPlaceOrder:         "ஆர்டர் செய்",
		KeyBackToCart:         "கூடைக்குத் திரும்பு",
		KeyProcessingPayment:  "பணம் செலுத்தப்படுகிறது...",
		KeyFillAllFields:      "அனைத்து டெலிவரி விவரங்களையும் நிரப்பவும்",
		KeyOrderConfirmed:     "ஆர்டர் உறுதி செய்யப்பட்டது!",
		KeyOrderThanks:        "எங்களுடன் வாங்கியதற்கு நன்றி. உங்கள் மளிகை பொருட்கள் வந்து கொண்டிருக்கின்றன.",
		KeyOrderNumber:        "ஆர்டர் எண்",
		KeyContinueShopping:   "தொடர்ந்து வாங்குங்கள்",
		KeySuggestionsTitle:   "உங்களுக்குப் பிடிக்கலாம்",
		KeyMyOrders:           "என் ஆர்டர்கள்",
		KeyNoOrders:           "இன்னும் ஆர்டர்கள் இல்லை",
		KeyItems:              "பொருட்கள்",
		KeySettings:           "அமைப்புகள்",
		KeySave:               "சேமி",
		KeyCancel:             "ரத்து",
		KeyLanguage:           "மொழி",
		KeySettingsSaved:      "அமைப்புகள் சேமிக்கப்பட்டன!",
		KeyAPIEndpoint:        "பரிந்துரை API முகவரி",
		KeyAPIKey:             "பரிந்துரை API சாவி",
		KeyModelName:          "பரிந்துரை மாடல்",
		KeyClose:              "மூடு",
	}
}
