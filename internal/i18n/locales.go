package i18n

var english = Translations{
	Nav: NavText{
		Network: "Network",
		Pricing: "Pricing",
		Profile: "My Mirror",
		Access:  "Access",
	},
	Common: CommonText{
		NodeNetwork:       "Node Network",
		NetworkSub:        "Discover verified reputation profiles",
		SearchPlaceholder: "Search by name or @handle",
		FeaturedMiners:    "Featured Miners",
		TrustRank:         "Trust Rank",
		AllNodes:          "All Nodes",
		InsightStream:     "Insight Stream",
		NetworkStats:      "Network Stats",
		TrendingNow:       "Trending Now",
		TrustRate:         "Trust Rate",
		Verified:          "Verified",
		CopyLink:          "Copy Profile Link",
		Copied:            "Link Copied",
		SubmitFeedback:    "Submit Feedback",
		Skills:            "Top Skills",
		Radar:             "Reputation Radar",
		GrowthInsight:     "Growth Insight",
		AIMining:          "Let the mirror analyze your feedback history",
		AILoading:         "Mining insight...",
		AIButton:          "Generate Insight",
		FeedbackMines:     "Feedback Mines",
		EmptyNode:         "No feedback mined yet",
		SelectDomain:      "Select Domain",
		RatingProtocol:    "Rating Protocol",
		GrowthObs:         "Growth Observation",
		Cancel:            "Cancel",
		Deploy:            "Deploy Feedback",
	},
	Domains: DomainText{
		Professional:  "Professional",
		Communication: "Communication",
		Reliability:   "Reliability",
		Leadership:    "Leadership",
		Social:        "Social",
		Dating:        "Dating",
	},
	Pricing: PricingText{
		MiningTiers:  "Mining Tiers",
		PowerGrowth:  "Power Your Growth",
		Sub:          "Choose how deep the mirror looks",
		FreeTitle:    "Free",
		ProTitle:     "Pro",
		PerMonth:     "VND / month",
		Active:       "Active",
		Upgrade:      "Upgrade",
		Recommended:  "Recommended",
		FeaturesFree: []string{"Public profile", "Receive feedback", "Reputation radar"},
		FeaturesPro:  []string{"Everything in Free", "AI growth insight", "Priority in network listing"},
	},
	Auth: AuthText{
		LoginTitle:    "Access",
		LoginSub:      "Reconnect to your mirror",
		UserID:        "User ID",
		SecurityKey:   "Security Key",
		InitSession:   "Initialize Session",
		RegisterTitle: "Create Identity",
		RegisterSub:   "Join the reputation network",
		FullName:      "Full Designation",
		Alias:         "Network Alias",
		Authorize:     "Authorize",
	},
}

var vietnamese = Translations{
	Nav: NavText{
		Network: "Mạng lưới",
		Pricing: "Bảng giá",
		Profile: "Gương của tôi",
		Access:  "Truy cập",
	},
	Common: CommonText{
		NodeNetwork:       "Mạng lưới nút",
		NetworkSub:        "Khám phá hồ sơ uy tín đã xác minh",
		SearchPlaceholder: "Tìm theo tên hoặc @tài khoản",
		FeaturedMiners:    "Thợ mỏ nổi bật",
		TrustRank:         "Hạng uy tín",
		AllNodes:          "Tất cả các nút",
		InsightStream:     "Dòng chia sẻ",
		NetworkStats:      "Thống kê mạng lưới",
		TrendingNow:       "Đang thịnh hành",
		TrustRate:         "Tỷ lệ uy tín",
		Verified:          "Đã xác minh",
		CopyLink:          "Sao chép liên kết",
		Copied:            "Đã sao chép",
		SubmitFeedback:    "Gửi nhận xét",
		Skills:            "Kỹ năng hàng đầu",
		Radar:             "Radar uy tín",
		GrowthInsight:     "Phân tích phát triển",
		AIMining:          "Để chiếc gương phân tích lịch sử nhận xét của bạn",
		AILoading:         "Đang phân tích...",
		AIButton:          "Tạo phân tích",
		FeedbackMines:     "Nhận xét đã nhận",
		EmptyNode:         "Chưa có nhận xét nào",
		SelectDomain:      "Chọn lĩnh vực",
		RatingProtocol:    "Đánh giá",
		GrowthObs:         "Quan sát phát triển",
		Cancel:            "Hủy",
		Deploy:            "Gửi nhận xét",
	},
	Domains: DomainText{
		Professional:  "Chuyên môn",
		Communication: "Giao tiếp",
		Reliability:   "Độ tin cậy",
		Leadership:    "Lãnh đạo",
		Social:        "Xã hội",
		Dating:        "Hẹn hò",
	},
	Pricing: PricingText{
		MiningTiers:  "Các gói",
		PowerGrowth:  "Tăng tốc phát triển",
		Sub:          "Chọn mức độ chiếc gương nhìn sâu",
		FreeTitle:    "Miễn phí",
		ProTitle:     "Pro",
		PerMonth:     "VND / tháng",
		Active:       "Đang dùng",
		Upgrade:      "Nâng cấp",
		Recommended:  "Đề xuất",
		FeaturesFree: []string{"Hồ sơ công khai", "Nhận nhận xét", "Radar uy tín"},
		FeaturesPro:  []string{"Mọi thứ của gói miễn phí", "Phân tích AI", "Ưu tiên trong mạng lưới"},
	},
	Auth: AuthText{
		LoginTitle:    "Truy cập",
		LoginSub:      "Kết nối lại với chiếc gương của bạn",
		UserID:        "Tên đăng nhập",
		SecurityKey:   "Mật khẩu",
		InitSession:   "Bắt đầu phiên",
		RegisterTitle: "Tạo danh tính",
		RegisterSub:   "Tham gia mạng lưới uy tín",
		FullName:      "Họ và tên",
		Alias:         "Bí danh",
		Authorize:     "Xác nhận",
	},
}
