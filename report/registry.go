package report

// Field is one reportable item within a category: the submission key, the
// Bengali label shown in tables and exports, and its conversion rule.
type Field struct {
	Key   string
	Label string
	Kind  Kind
}

// Category describes one report type. The field order here is the row order
// of every table, chart and export.
type Category struct {
	Slug   string
	Name   string
	Fields []Field
}

// Categories is the fixed registry of report types. The amoli muhasaba
// (self-accounting) sheet carries the coded string fields; the rest are
// daily counters.
var Categories = []Category{
	{
		Slug: "amoli", Name: "আ'মলি মুহাসাবা",
		Fields: []Field{
			{Key: "tahajjud", Label: "তাহাজ্জুদ (রাকাত)", Kind: KindNumeric},
			{Key: "ayat", Label: "তিলাওয়াত (আয়াত)", Kind: KindAyat},
			{Key: "zikir", Label: "যিকির", Kind: KindZikir},
			{Key: "ishraq", Label: "ইশরাক-আওয়াবিন", Kind: KindPresence},
			{Key: "jamat", Label: "জামাতে সালাত (ওয়াক্ত)", Kind: KindJamat},
			{Key: "sirat", Label: "সিরাত পাঠ", Kind: KindPresence},
			{Key: "Dua", Label: "দু'আ", Kind: KindYesNo},
			{Key: "ilm", Label: "ইলম অর্জন", Kind: KindPresence},
			{Key: "surah", Label: "সূরা পাঠ", Kind: KindPresence},
			{Key: "tasbih", Label: "তাসবিহ", Kind: KindYesNo},
			{Key: "amoliSura", Label: "আমলি সূরা", Kind: KindYesNo},
			{Key: "hijbulBahar", Label: "হিযবুল বাহার", Kind: KindYesNo},
			{Key: "dayeeAmol", Label: "দাঈ'র আমল", Kind: KindYesNo},
			{Key: "ayamroja", Label: "আইয়ামে বীযের রোজা", Kind: KindYesNo},
		},
	},
	{
		Slug: "moktob", Name: "মক্তব বিষয়",
		Fields: []Field{
			{Key: "notunMoktobChalu", Label: "নতুন মক্তব চালু হয়েছে", Kind: KindNumeric},
			{Key: "totalMoktob", Label: "মোট মক্তব", Kind: KindNumeric},
			{Key: "totalStudent", Label: "মোট শিক্ষার্থী", Kind: KindNumeric},
			{Key: "obhibhabokConference", Label: "অভিভাবক সম্মেলন", Kind: KindNumeric},
			{Key: "moktobVisit", Label: "মক্তব পরিদর্শন", Kind: KindNumeric},
			{Key: "boroderMoktob", Label: "বড়দের রাতের মক্তব", Kind: KindNumeric},
		},
	},
	{
		Slug: "dawati", Name: "দাওয়াতি বিষয়",
		Fields: []Field{
			{Key: "nonMuslimDawat", Label: "অমুসলিমদের দাওয়াত", Kind: KindNumeric},
			{Key: "murtadDawat", Label: "মুরতাদদের দাওয়াত", Kind: KindNumeric},
			{Key: "alemSaksat", Label: "আলেম-ওলামার সাথে সাক্ষাৎ", Kind: KindNumeric},
			{Key: "publicSaksat", Label: "সাধারণ মানুষের সাথে সাক্ষাৎ", Kind: KindNumeric},
			{Key: "saptahikGasht", Label: "সাপ্তাহিক গাশত", Kind: KindNumeric},
		},
	},
	{
		Slug: "dawatimojlish", Name: "দাওয়াতি মজলিশ",
		Fields: []Field{
			{Key: "dawatMojlish", Label: "দাওয়াতি মজলিশ হয়েছে", Kind: KindNumeric},
			{Key: "mojlishOnshogrohon", Label: "মজলিশে অংশগ্রহণ", Kind: KindNumeric},
		},
	},
	{
		Slug: "jamat", Name: "জামাত বিষয়",
		Fields: []Field{
			{Key: "jamatBerHoise", Label: "জামাত বের হয়েছে", Kind: KindNumeric},
			{Key: "jamatSathi", Label: "জামাতের সাথী", Kind: KindNumeric},
		},
	},
	{
		Slug: "dinefera", Name: "দ্বীনে ফিরে এসেছে",
		Fields: []Field{
			{Key: "nonMuslimMuslimHoise", Label: "অমুসলিম মুসলিম হয়েছে", Kind: KindNumeric},
			{Key: "murtadIslamFireche", Label: "মুরতাদ ইসলামে ফিরেছে", Kind: KindNumeric},
		},
	},
	{
		Slug: "talim", Name: "তা'লিম বিষয়",
		Fields: []Field{
			{Key: "mohilaTalim", Label: "মহিলাদের তা'লিম", Kind: KindNumeric},
			{Key: "mohilaOnshogrohon", Label: "তা'লিমে অংশগ্রহণ", Kind: KindNumeric},
		},
	},
	{
		Slug: "sofor", Name: "সফর বিষয়",
		Fields: []Field{
			{Key: "madrasaVisit", Label: "মাদরাসা সফর", Kind: KindNumeric},
			{Key: "moktobVisit", Label: "মক্তব সফর", Kind: KindNumeric},
			{Key: "schoolCollegeVisit", Label: "স্কুল-কলেজ সফর", Kind: KindNumeric},
		},
	},
	{
		Slug: "dayi", Name: "দাঈ বিষয়",
		Fields: []Field{
			{Key: "sohojogiDayeToiri", Label: "সহযোগী দাঈ তৈরি", Kind: KindNumeric},
		},
	},
}

// BySlug looks a category up by its URL slug.
func BySlug(slug string) (Category, bool) {
	for _, c := range Categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return Category{}, false
}

// Slugs returns every registered category slug, in registry order.
func Slugs() []string {
	out := make([]string, len(Categories))
	for i, c := range Categories {
		out[i] = c.Slug
	}
	return out
}
