/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package i18n

var nextStepKeys = []string{
	"step.blood_tests",
	"step.consult_doctor",
	"step.diet",
	"step.exercise",
}

var hindiMessages = map[string]string{
	"language":         "भाषा चुनें / Choose Language",
	"title":            "Confidence AI - आपका व्यक्तिगत विश्वसनीयता सलाहकार",
	"subtitle":         "जानिए आपकी AI भविष्यवाणियाँ कितनी विश्वसनीय हैं - 90%+ गारंटी के साथ",
	"nav.home":         "होम",
	"nav.about":        "जानकारी",
	"health":           "🩺 स्वास्थ्य जाँच",
	"health_desc":      "अपने मेडिकल रिपोर्ट की विश्वसनीयता जानें",
	"finance":          "💰 निवेश विश्लेषण",
	"finance_desc":     "अपने स्टॉक प्रेडिक्शन का कॉन्फिडेंस लेवल चेक करें",
	"education":        "📚 करियर मार्गदर्शन",
	"education_desc":   "अपने करियर चॉइस की सफलता संभावना",
	"custom":           "⚙️ कस्टम विश्लेषण",
	"custom_desc":      "अपनी खास जरूरत के लिए बनाएं",
	"confidence_level": "विश्वास स्तर चुनें",
	"confidence_help":  "आप कितने % विश्वास चाहते हैं कि भविष्यवाणी सही है",
	"upload_data":      "अपना डेटा अपलोड करें",
	"analyze":          "विश्लेषण करें",
	"result":           "परिणाम",
	"confidence":       "विश्वास स्तर",
	"prediction":       "भविष्यवाणी",
	"next_steps":       "अगले कदम",
	"download":         "रिपोर्ट डाउनलोड करें",
	"share":            "शेयर करें",

	"health.heading":       "🩺 मेडिकल रिपोर्ट विश्वसनीयता विश्लेषण",
	"health.report_type":   "रिपोर्ट प्रकार चुनें",
	"health.upload":        "अपना मेडिकल रिपोर्ट अपलोड करें (PDF, Image, CSV)",
	"health.manual":        "या मैन्युअल डेटा डालें",
	"health.diagnosis":     "निदान",
	"health.interval":      "विश्वसनीयता अंतराल",
	"health.out_of_ten":    "(10 में से)",
	"health.attachment":    "संलग्न रिपोर्ट",
	"health.whatsapp":      "📱 WhatsApp",
	"health.whatsapp_hint": "WhatsApp लिंक तैयार!",
	"health.reference":     "रिपोर्ट संदर्भ",

	"report_type.blood_test": "ब्लड टेस्ट",
	"report_type.ecg":        "ECG",
	"report_type.xray":       "X-Ray",
	"report_type.mri":        "MRI",
	"report_type.general":    "सामान्य जाँच",

	"field.age":         "उम्र",
	"field.bp":          "ब्लड प्रेशर",
	"field.sugar":       "ब्लड शुगर",
	"field.cholesterol": "कोलेस्ट्रॉल",
	"field.bmi":         "BMI",
	"field.symptoms":    "लक्षण",
	"symptoms.default":  "थकान, चक्कर आना",

	"tier.normal.label":      "सामान्य स्वास्थ्य",
	"tier.normal.prediction": "कोई गंभीर समस्या नहीं",
	"tier.medium.label":      "मध्यम जोखिम",
	"tier.medium.prediction": "प्री-डायबिटीज / हाई BP की संभावना",
	"tier.high.label":        "उच्च जोखिम",
	"tier.high.prediction":   "डायबिटीज या हृदय रोग का खतरा",

	"step.blood_tests":    "नियमित ब्लड टेस्ट कराएं",
	"step.consult_doctor": "डॉक्टर से सलाह लें",
	"step.diet":           "संतुलित आहार लें",
	"step.exercise":       "नियमित व्यायाम करें",

	"chart.title":       "विश्लेषण परिणाम",
	"chart.reliability": "विश्वसनीयता",
	"chart.accuracy":    "सटीकता",
	"chart.importance":  "महत्व",
	"chart.yaxis":       "प्रतिशत (%)",

	"coming_soon": "यह फीचर जल्द ही उपलब्ध होगा!",

	"custom.heading":            "⚙️ कस्टम डेटा विश्लेषण",
	"custom.upload":             "अपना डेटा फ़ाइल अपलोड करें (CSV, Excel)",
	"custom.preview":            "डेटा प्रीव्यू",
	"custom.rows":               "कुल पंक्तियाँ: %d",
	"custom.target":             "टार्गेट कॉलम चुनें",
	"custom.problem_type":       "समस्या प्रकार चुनें",
	"custom.complete":           "विश्लेषण पूरा हुआ!",
	"custom.coverage":           "कवरेज दर",
	"custom.coverage_delta":     "लक्ष्य प्राप्ति",
	"custom.avg_set_size":       "औसत सेट आकार",
	"custom.avg_set_size_delta": "कम बेहतर",
	"custom.intervals":          "भविष्यवाणी अंतराल",
	"custom.instance":           "डेटा %d",
	"custom.instance_col":       "इंस्टेंस",
	"custom.set_col":            "प्रेडिक्शन सेट",

	"problem.classification": "क्लासिफिकेशन",
	"problem.regression":     "रिग्रेशन",
	"problem.time_series":    "समय श्रृंखला",

	"error":                "त्रुटि: %s",
	"error.invalid_number": "%s के लिए अमान्य संख्या",
	"error.form":           "फ़ॉर्म पढ़ने में विफल",
	"error.upload_type":    "यह फ़ाइल प्रकार समर्थित नहीं है",
	"error.upload_missing": "कृपया एक फ़ाइल चुनें",
	"error.no_preview":     "पहले डेटा फ़ाइल अपलोड करें",
	"error.target_column":  "अमान्य टार्गेट कॉलम",
	"error.problem_type":   "अमान्य समस्या प्रकार",
	"error.report":         "रिपोर्ट बनाने में विफल",
	"error.use_case":       "अज्ञात उपयोग मामला",
	"error.language":       "यह भाषा उपलब्ध नहीं है",

	"language.changed": "भाषा बदल दी गई",

	"report.title":       "Confidence AI विश्लेषण रिपोर्ट",
	"report.reference":   "संदर्भ",
	"report.report_type": "रिपोर्ट प्रकार",
	"report.diagnosis":   "निदान",
	"report.confidence":  "विश्वास स्तर",
	"report.prediction":  "भविष्यवाणी",
	"report.interval":    "विश्वसनीयता अंतराल",
	"report.symptoms":    "लक्षण",
	"report.next_steps":  "अगले कदम",
	"report.footer":      "Confidence AI द्वारा निर्मित - आपका व्यक्तिगत विश्वसनीयता सलाहकार",
}

var englishMessages = map[string]string{
	"language":         "भाषा चुनें / Choose Language",
	"title":            "Confidence AI - Your Personal Reliability Advisor",
	"subtitle":         "Know how reliable your AI predictions are - with 90%+ guarantee",
	"nav.home":         "Home",
	"nav.about":        "About",
	"health":           "🩺 Health Check",
	"health_desc":      "Check reliability of your medical reports",
	"finance":          "💰 Investment Analysis",
	"finance_desc":     "Check confidence level of your stock predictions",
	"education":        "📚 Career Guidance",
	"education_desc":   "Success probability of your career choices",
	"custom":           "⚙️ Custom Analysis",
	"custom_desc":      "Build for your specific needs",
	"confidence_level": "Choose Confidence Level",
	"confidence_help":  "How confident (%) you want to be that the prediction is right",
	"upload_data":      "Upload Your Data",
	"analyze":          "Analyze",
	"result":           "Result",
	"confidence":       "Confidence Level",
	"prediction":       "Prediction",
	"next_steps":       "Next Steps",
	"download":         "Download Report",
	"share":            "Share",

	"health.heading":       "🩺 Medical Report Reliability Analysis",
	"health.report_type":   "Select Report Type",
	"health.upload":        "Upload your medical report (PDF, Image, CSV)",
	"health.manual":        "Or Enter Data Manually",
	"health.diagnosis":     "Diagnosis",
	"health.interval":      "Confidence Interval",
	"health.out_of_ten":    "(out of 10)",
	"health.attachment":    "Attached report",
	"health.whatsapp":      "📱 WhatsApp",
	"health.whatsapp_hint": "WhatsApp link ready!",
	"health.reference":     "Report reference",

	"report_type.blood_test": "Blood Test",
	"report_type.ecg":        "ECG",
	"report_type.xray":       "X-Ray",
	"report_type.mri":        "MRI",
	"report_type.general":    "General Checkup",

	"field.age":         "Age",
	"field.bp":          "Blood Pressure",
	"field.sugar":       "Blood Sugar",
	"field.cholesterol": "Cholesterol",
	"field.bmi":         "BMI",
	"field.symptoms":    "Symptoms",
	"symptoms.default":  "Fatigue, dizziness",

	"tier.normal.label":      "Normal Health",
	"tier.normal.prediction": "No serious problem",
	"tier.medium.label":      "Medium Risk",
	"tier.medium.prediction": "Possible pre-diabetes / high BP",
	"tier.high.label":        "High Risk",
	"tier.high.prediction":   "Risk of diabetes or heart disease",

	"step.blood_tests":    "Get regular blood tests",
	"step.consult_doctor": "Consult a doctor",
	"step.diet":           "Maintain balanced diet",
	"step.exercise":       "Exercise regularly",

	"chart.title":       "Analysis Results",
	"chart.reliability": "Reliability",
	"chart.accuracy":    "Accuracy",
	"chart.importance":  "Importance",
	"chart.yaxis":       "Percentage (%)",

	"coming_soon": "This feature coming soon!",

	"custom.heading":            "⚙️ Custom Data Analysis",
	"custom.upload":             "Upload your data file (CSV, Excel)",
	"custom.preview":            "Data Preview",
	"custom.rows":               "Total rows: %d",
	"custom.target":             "Select Target Column",
	"custom.problem_type":       "Select Problem Type",
	"custom.complete":           "Analysis complete!",
	"custom.coverage":           "Coverage Rate",
	"custom.coverage_delta":     "Target achieved",
	"custom.avg_set_size":       "Average Set Size",
	"custom.avg_set_size_delta": "Lower is better",
	"custom.intervals":          "Prediction Intervals",
	"custom.instance":           "Data %d",
	"custom.instance_col":       "Instance",
	"custom.set_col":            "Prediction Set",

	"problem.classification": "Classification",
	"problem.regression":     "Regression",
	"problem.time_series":    "Time Series",

	"error":                "Error: %s",
	"error.invalid_number": "Invalid number for %s",
	"error.form":           "Failed to read form",
	"error.upload_type":    "This file type is not supported",
	"error.upload_missing": "Please choose a file",
	"error.no_preview":     "Upload a data file first",
	"error.target_column":  "Invalid target column",
	"error.problem_type":   "Invalid problem type",
	"error.report":         "Failed to build report",
	"error.use_case":       "Unknown use case",
	"error.language":       "This language is not available",

	"language.changed": "Language changed",

	"report.title":       "Confidence AI Analysis Report",
	"report.reference":   "Reference",
	"report.report_type": "Report Type",
	"report.diagnosis":   "Diagnosis",
	"report.confidence":  "Confidence Level",
	"report.prediction":  "Prediction Range",
	"report.interval":    "Confidence Interval",
	"report.symptoms":    "Symptoms",
	"report.next_steps":  "Next Steps",
	"report.footer":      "Generated by Confidence AI - Your Personal Reliability Advisor",
}
