package render

import (
	"fmt"
	"html/template"
)

const gtmSnippet = `<!-- Google Tag Manager -->
<script>(function(w,d,s,l,i){w[l]=w[l]||[];w[l].push({'gtm.start':
new Date().getTime(),event:'gtm.js'});var f=d.getElementsByTagName(s)[0],
j=d.createElement(s),dl=l!='dataLayer'?'&l='+l:'';j.async=true;j.src=
'https://www.googletagmanager.com/gtm.js?id='+i+dl;f.parentNode.insertBefore(j,f);
})(window,document,'script','dataLayer','%s');</script>
<!-- End Google Tag Manager -->`

// GTMHead 返回注入容器 ID 后的 GTM 引导脚本；没配容器就什么都不输出
func GTMHead(container string) template.HTML {
	if container == "" {
		return ""
	}
	return template.HTML(fmt.Sprintf(gtmSnippet, container))
}
