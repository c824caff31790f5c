package constants

// AdIndicators is the expanded multilingual keyword lexicon used by the
// keyword/OCR page-detection strategy. The entries are Arabic terms that mark
// advertisement, tender and auction sections in Algerian dailies. This is
// configuration data, not logic: callers may substitute their own lexicon.
var AdIndicators = []string{
	"إشهار",              // advertisement (main indicator)
	"إعلان",              // announcement
	"الإعلانات",          // the advertisements
	"إعلانات",            // advertisements
	"اتصل بمصلحة الإشهار", // contact the advertising department
	"للإعلان",            // for advertising
	"السوق",              // market (common in ad sections)
	"عروض",               // offers
	"مناقصة",             // tender
	"مزايدة",             // auction
	"بيع",                // sale
	"شراء",               // purchase
	"إعلان قانوني",       // legal announcement
	"إعلانات مبوبة",      // classified ads
	"إعلانات قانونية",    // legal ads
	"إعلانات تجارية",     // commercial ads
	"إعلان عن",           // announcement about
	"إشهار تجاري",        // commercial advertisement
	"إشهارات",            // advertisements
	"إعلانكم",            // your (pl.) advertisement
	"إشهاركم",            // your (pl.) advertising
	"الإشهار",            // the advertisement
	"تعلن",               // (she/it) announces
	"يعلن",               // (he/it) announces
	"إعلامكم",            // to inform you
	"إعلام",              // notice
	"فرصة",               // opportunity
	"عرض خاص",            // special offer
}
