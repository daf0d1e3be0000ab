package domain

// SeedQuotes returns the gallery's built-in quotes. A restart resets the
// in-memory store to exactly this list.
func SeedQuotes() []Quote {
	return []Quote{
		{ID: "ym1", Quote: "心外无物，心外无理。", Author: "王阳明", Source: "《传习录》", Category: "心学"},
		{ID: "ym2", Quote: "知是行之始，行是知之成。", Author: "王阳明", Source: "《传习录》", Category: "心学"},
		{ID: "ym3", Quote: "破山中贼易，破心中贼难。", Author: "王阳明", Source: "《与杨仕德薛尚谦书》", Category: "心学"},
		{ID: "kz1", Quote: "学而不思则罔，思而不学则殆。", Author: "孔子", Source: "《论语·为政》", Category: "儒家"},
		{ID: "kz2", Quote: "己所不欲，勿施于人。", Author: "孔子", Source: "《论语·卫灵公》", Category: "儒家"},
		{ID: "mz1", Quote: "天时不如地利，地利不如人和。", Author: "孟子", Source: "《孟子·公孙丑下》", Category: "儒家"},
		{ID: "lz1", Quote: "上善若水，水善利万物而不争。", Author: "老子", Source: "《道德经》", Category: "道家"},
		{ID: "lz2", Quote: "知人者智，自知者明。", Author: "老子", Source: "《道德经》", Category: "道家"},
		{ID: "zz1", Quote: "吾生也有涯，而知也无涯。", Author: "庄子", Source: "《庄子·养生主》", Category: "道家"},
		{ID: "hn1", Quote: "菩提本无树，明镜亦非台。", Author: "慧能", Source: "《六祖坛经》", Category: "佛学"},
		{ID: "sz1", Quote: "知彼知己，百战不殆。", Author: "孙子", Source: "《孙子兵法·谋攻》", Category: "兵法"},
		{ID: "sd1", Quote: "人生如逆旅，我亦是行人。", Author: "苏轼", Source: "《临江仙·送钱穆父》", Category: "诗词"},
	}
}
